package notebook

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcscope/arcscope/analysis"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/ui/render"
)

func TestNotebookDetection(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv clears for the test body.
	t.Setenv(goNBKernelEnv, "")
	t.Setenv(bashKernelEnv, "")
	require.NoError(t, os.Unsetenv(goNBKernelEnv))
	require.NoError(t, os.Unsetenv(bashKernelEnv))
	require.False(t, IsGoNB())
	require.False(t, IsBashKernel())
	require.False(t, InNotebook())

	t.Setenv(goNBKernelEnv, "/tmp/gonb_pipe")
	require.True(t, IsGoNB())
	require.True(t, InNotebook())
}

func TestEmbedImageSrc(t *testing.T) {
	g := grids.MustFromRows([][]grids.Color{{1, 2}, {3, 4}})
	src, err := EmbedImageSrc(render.Image(g))
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(src, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(src, prefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
}

func TestSizeDistributionHTML(t *testing.T) {
	records := []analysis.GridRecord{
		{TaskID: "a", Height: 1, Width: 2, Size: 2},
		{TaskID: "a", Height: 2, Width: 2, Size: 4},
		{TaskID: "b", Height: 2, Width: 2, Size: 4},
		{TaskID: "b", Height: 5, Width: 6, Size: 30},
	}
	html, err := SizeDistributionHTML(records, 800, 400)
	require.NoError(t, err)
	require.Contains(t, html, "<svg")
	require.Contains(t, html, "</svg>")
	require.Contains(t, html, "Grid size distribution")

	_, err = SizeDistributionHTML(nil, 800, 400)
	require.ErrorIs(t, err, analysis.ErrEmptyDataset)
}
