package grids

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]Color{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	require.Equal(t, 2, g.Height())
	require.Equal(t, 3, g.Width())
	require.Equal(t, Shape{Height: 2, Width: 3}, g.Shape())
	require.Equal(t, g.Height()*g.Width(), g.Size())
	require.Equal(t, Color(5), g.At(1, 2))
}

func TestFromRowsValidation(t *testing.T) {
	{ // No rows.
		_, err := FromRows(nil)
		require.ErrorIs(t, err, ErrInvalidGrid)
		_, err = FromRows([][]Color{})
		require.ErrorIs(t, err, ErrInvalidGrid)
	}
	{ // Empty first row.
		_, err := FromRows([][]Color{{}})
		require.ErrorIs(t, err, ErrInvalidGrid)
	}
	{ // Ragged rows.
		_, err := FromRows([][]Color{{1, 2}, {3}})
		require.ErrorIs(t, err, ErrInvalidGrid)
	}
	{ // Negative color.
		_, err := FromRows([][]Color{{0, 1}, {-1, 0}})
		require.ErrorIs(t, err, ErrInvalidGrid)
	}

	require.Panics(t, func() { MustFromRows([][]Color{{1, 2}, {3}}) })
	require.NotPanics(t, func() { MustFromRows([][]Color{{1, 2}}) })
}

func TestGridColors(t *testing.T) {
	g := MustFromRows([][]Color{{0, 1}, {1, 0}})
	colors := g.UniqueColors()
	require.Len(t, colors, 2)
	require.True(t, colors.Has(0))
	require.True(t, colors.Has(1))

	counts := g.ColorCounts()
	require.Equal(t, map[Color]int{0: 2, 1: 2}, counts)

	// Every unique color must appear as a key in the counts.
	for c := range colors {
		require.Contains(t, counts, c)
	}
}

func TestCellAccess(t *testing.T) {
	g := MustFromRows([][]Color{{0, 1, 2}, {3, 4, 5}})

	c, err := g.Cell(0, 2)
	require.NoError(t, err)
	require.Equal(t, Color(2), c)
	c, err = g.Cell(1, 0)
	require.NoError(t, err)
	require.Equal(t, Color(3), c)

	for _, coords := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := g.Cell(coords[0], coords[1])
		require.ErrorIsf(t, err, ErrIndexOutOfRange, "Cell(%d, %d)", coords[0], coords[1])
	}

	require.Panics(t, func() { g.At(2, 0) })
	require.Panics(t, func() { g.At(0, 3) })
	require.Panics(t, func() { g.Row(2) })
}

func TestRowsAreCopies(t *testing.T) {
	g := MustFromRows([][]Color{{7, 8}, {9, 0}})
	rows := g.Rows()
	require.Equal(t, [][]Color{{7, 8}, {9, 0}}, rows)

	// Mutating the returned rows must not be visible through the grid.
	rows[0][0] = 3
	require.Equal(t, Color(7), g.At(0, 0))
	row := g.Row(1)
	row[1] = 5
	require.Equal(t, Color(0), g.At(1, 1))
}

func TestGridIsACopyOfInput(t *testing.T) {
	rows := [][]Color{{1, 2}, {3, 4}}
	g := MustFromRows(rows)
	rows[0][0] = 9
	require.Equal(t, Color(1), g.At(0, 0))
}

func TestGridEqual(t *testing.T) {
	a := MustFromRows([][]Color{{1, 2}, {3, 4}})
	b := MustFromRows([][]Color{{1, 2}, {3, 4}})
	c := MustFromRows([][]Color{{1, 2}, {3, 5}})
	d := MustFromRows([][]Color{{1, 2, 3, 4}})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))

	var nilGrid *Grid
	require.True(t, nilGrid.Equal(nil))
}

func TestGridString(t *testing.T) {
	g := MustFromRows([][]Color{{0, 1}, {2, 3}})
	require.Equal(t, "0 1\n2 3", g.String())
}

func TestErrorMessagesCarryContext(t *testing.T) {
	_, err := FromRows([][]Color{{1, 2}, {3}})
	require.Contains(t, err.Error(), "row 1")
	require.Equal(t, ErrInvalidGrid, errors.Cause(err))
}
