package commandline

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

func TestFormatGridProfile(t *testing.T) {
	g := grids.MustFromRows([][]grids.Color{{0, 1}, {1, 0}})

	{ // No color support falls back to the digit form.
		out := FormatGridProfile(g, termenv.Ascii)
		require.Equal(t, g.String(), out)
		require.Equal(t, "0 1\n1 0", out)
	}

	{ // True color renders one background-colored block per cell.
		out := FormatGridProfile(g, termenv.TrueColor)
		require.Equal(t, 2, len(strings.Split(out, "\n")))
		require.Contains(t, out, "48;2;0;0;0", "black background")
		require.Contains(t, out, "48;2;0;116;217", "blue background")
		require.Equal(t, 4, strings.Count(out, "  "), "one two-space block per cell")
	}
}

func TestCellBlock(t *testing.T) {
	block := cellBlock(termenv.TrueColor, 2)
	require.Contains(t, block, "48;2;255;65;54", "red background")
	require.Contains(t, block, "  ")
}

func TestFormatTaskProfile(t *testing.T) {
	example, err := grids.ExampleFromRows(
		[][]grids.Color{{1, 1}, {1, 1}},
		[][]grids.Color{{2, 2, 2}, {2, 2, 2}})
	require.NoError(t, err)
	testInput := grids.MustFromRows([][]grids.Color{{3}})

	task, err := tasks.New("00d62c1b", []grids.Example{example}, testInput)
	require.NoError(t, err)
	out := FormatTaskProfile(task, termenv.Ascii)
	require.Contains(t, out, "Example 1 input (2x2):\n1 1\n1 1\n")
	require.Contains(t, out, "Example 1 output (2x3):\n2 2 2\n2 2 2\n")
	require.Contains(t, out, "Test input (1x1):\n3\n")
	require.NotContains(t, out, "Test output")

	solved, err := tasks.NewSolved("00d62c1b", []grids.Example{example}, testInput,
		grids.MustFromRows([][]grids.Color{{4}}))
	require.NoError(t, err)
	out = FormatTaskProfile(solved, termenv.Ascii)
	require.Contains(t, out, "Test output (1x1):\n4\n")
}
