// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package grids defines the value types of the ARC (Abstraction and Reasoning
// Corpus) data model: Color, Shape, Delta, Grid and Example.
//
// A Grid is an immutable rectangular matrix of small non-negative integer
// "colors". Grids are validated at construction time and never mutated
// afterwards, so they can be freely shared. An Example is an (input, output)
// Grid pair, the unit in which ARC tasks present their worked demonstrations.
//
// ## Glossary
//
//   - Color: an integer cell value in a small fixed domain. It is rendered as
//     a palette color but carries no arithmetic meaning. The reference corpus
//     uses 0-9, but nothing in the validation hard-codes the domain size --
//     only that values are non-negative.
//   - Shape: the (height, width) pair of a grid.
//   - Delta: the per-dimension change in shape from an example's input grid
//     to its output grid. Deltas may be negative: grids shrink as well as grow.
//
// Example: `grids.MustFromRows([][]grids.Color{{0, 1}, {1, 0}})` builds the
// 2x2 checkerboard with shape `2x2`, size 4 and colors {black, blue}.
package grids

import (
	"fmt"
)

// Color is a single cell value of a Grid.
//
// Values are small non-negative integers. The conventional ARC domain is 0-9
// and those values have palette names (see String), but larger values are
// accepted by grid validation.
type Color int8

// colorNames are the conventional names of the 0-9 ARC palette.
var colorNames = [10]string{
	"black", "blue", "red", "green", "yellow",
	"grey", "fuchsia", "orange", "teal", "maroon",
}

// String returns the palette name for colors in the conventional 0-9 domain,
// and "color(N)" otherwise.
func (c Color) String() string {
	if c >= 0 && int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", int8(c))
}

// Shape represents the dimensions of a Grid: height (number of rows) and
// width (number of columns). It is a comparable value type, so it can be used
// directly as a map key.
type Shape struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// Size returns the total number of cells, the product of height and width.
func (s Shape) Size() int { return s.Height * s.Width }

// IsSquare returns whether height and width are the same.
func (s Shape) IsSquare() bool { return s.Height == s.Width }

// AspectRatio returns width divided by height.
func (s Shape) AspectRatio() float64 { return float64(s.Width) / float64(s.Height) }

// Equal compares two shapes for equality.
func (s Shape) Equal(s2 Shape) bool { return s == s2 }

// String implements stringer, pretty-prints the shape as "HxW".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Height, s.Width) }

// Delta is the per-dimension difference between two shapes, conventionally
// output minus input. It is a comparable value type.
type Delta struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// DeltaBetween returns the shape change from `from` to `to`.
func DeltaBetween(from, to Shape) Delta {
	return Delta{Height: to.Height - from.Height, Width: to.Width - from.Width}
}

// IsZero returns whether the delta is zero in both dimensions, that is,
// the shapes it relates are identical.
func (d Delta) IsZero() bool { return d.Height == 0 && d.Width == 0 }

// String implements stringer, pretty-prints the delta with explicit signs,
// e.g. "(+1,-2)".
func (d Delta) String() string { return fmt.Sprintf("(%+d,%+d)", d.Height, d.Width) }
