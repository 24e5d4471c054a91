// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package grids

import (
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/types"
)

var (
	// ErrInvalidGrid is the cause of all grid validation failures: empty
	// grids, ragged rows or negative cell values. Check with errors.Is.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrIndexOutOfRange is returned by Cell for coordinates outside the
	// grid bounds.
	ErrIndexOutOfRange = errors.New("cell index out of range")
)

// Grid is an immutable rectangular matrix of colors.
//
// Use FromRows to create one: the only way to obtain a *Grid is through
// validation, so holding a *Grid is itself proof of a well-formed grid.
// Grids are never mutated after construction and can be shared freely.
type Grid struct {
	cells         []Color
	height, width int
}

// FromRows validates rows and returns a new Grid holding a copy of them.
//
// It fails wrapping ErrInvalidGrid if rows is empty, if the first row is
// empty, if any row's length differs from the first row's, or if any cell
// value is negative.
func FromRows(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "grid has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "grid first row is empty")
	}
	g := &Grid{
		cells:  make([]Color, 0, len(rows)*width),
		height: len(rows),
		width:  width,
	}
	for rowIdx, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidGrid, "row %d has %d columns, row 0 has %d",
				rowIdx, len(row), width)
		}
		for colIdx, cell := range row {
			if cell < 0 {
				return nil, errors.Wrapf(ErrInvalidGrid, "negative color %d at (%d, %d)",
					cell, rowIdx, colIdx)
			}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on invalid input.
// Useful for tests and literals in example code.
func MustFromRows(rows [][]Color) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		exceptions.Panicf("grids.MustFromRows: %+v", err)
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Shape returns the grid dimensions.
func (g *Grid) Shape() Shape { return Shape{Height: g.height, Width: g.width} }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.height * g.width }

// At returns the color at the given zero-based coordinates.
// Like with a slice indexing, it panics for out-of-bounds coordinates --
// see Cell for the error-returning version.
func (g *Grid) At(row, col int) Color {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		exceptions.Panicf("Grid.At(%d, %d) out-of-bounds for shape %s", row, col, g.Shape())
	}
	return g.cells[row*g.width+col]
}

// Cell returns the color at the given zero-based coordinates, or an error
// wrapping ErrIndexOutOfRange if either coordinate is outside the grid.
func (g *Grid) Cell(row, col int) (Color, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "position (%d, %d) in grid of shape %s",
			row, col, g.Shape())
	}
	return g.cells[row*g.width+col], nil
}

// Row returns a copy of the given row.
// It panics for an out-of-bounds row, like At.
func (g *Grid) Row(row int) []Color {
	if row < 0 || row >= g.height {
		exceptions.Panicf("Grid.Row(%d) out-of-bounds for shape %s", row, g.Shape())
	}
	out := make([]Color, g.width)
	copy(out, g.cells[row*g.width:(row+1)*g.width])
	return out
}

// Rows returns a copy of the cells as nested rows, the same form FromRows
// consumes. External collaborators (rendering, serialization) read grids
// through this without being able to touch the original data.
func (g *Grid) Rows() [][]Color {
	out := make([][]Color, g.height)
	for row := range out {
		out[row] = g.Row(row)
	}
	return out
}

// UniqueColors returns the set of distinct colors present in the grid.
func (g *Grid) UniqueColors() types.Set[Color] {
	set := types.MakeSet[Color]()
	for _, c := range g.cells {
		set.Insert(c)
	}
	return set
}

// ColorCounts returns the number of cells of each color present.
// Every color in UniqueColors appears as a key.
func (g *Grid) ColorCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range g.cells {
		counts[c]++
	}
	return counts
}

// Equal compares two grids cell by cell.
func (g *Grid) Equal(g2 *Grid) bool {
	if g == nil || g2 == nil {
		return g == g2
	}
	if g.height != g2.height || g.width != g2.width {
		return false
	}
	for i, c := range g.cells {
		if c != g2.cells[i] {
			return false
		}
	}
	return true
}

// String implements stringer, one line of space-separated color values per row.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.width; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(g.cells[row*g.width+col])))
		}
	}
	return b.String()
}
