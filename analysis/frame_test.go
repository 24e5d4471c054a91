package analysis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataFrame(t *testing.T) {
	records := []GridRecord{rec("aaaaaaaa", 2, 2), rec("bbbbbbbb", 1, 3)}
	df := DataFrame(records)
	require.NoError(t, df.Error())
	require.Equal(t, 2, df.Nrow())
	require.Equal(t, []string{
		"task_id", "role", "example_idx", "height", "width", "size",
		"aspect_ratio", "is_square",
	}, df.Names())

	df = DataFrame(nil)
	require.NoError(t, df.Error())
	require.Equal(t, 0, df.Nrow())
}

func TestWriteCSV(t *testing.T) {
	records := []GridRecord{rec("aaaaaaaa", 2, 2), rec("bbbbbbbb", 1, 3)}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(records, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "task_id,role,example_idx,height,width,size,aspect_ratio,is_square",
		lines[0])
	require.True(t, strings.HasPrefix(lines[1], "aaaaaaaa,train_input,0,2,2,4,"), lines[1])
	require.Contains(t, lines[1], "true")
	require.True(t, strings.HasPrefix(lines[2], "bbbbbbbb,train_input,0,1,3,3,"), lines[2])
	require.Contains(t, lines[2], "false")
}
