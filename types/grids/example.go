// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package grids

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Example is one worked (input, output) grid pair of an ARC task.
//
// It places no constraint relating the two grids: input and output may differ
// arbitrarily in shape and color content. Examples are immutable and owned by
// the task that holds them.
type Example struct {
	input, output *Grid
}

// NewExample creates an Example from two already validated grids.
// It panics if either grid is nil; use ExampleFromRows to build from raw rows.
func NewExample(input, output *Grid) Example {
	if input == nil || output == nil {
		exceptions.Panicf("grids.NewExample: input and output grids must be non-nil (input=%v, output=%v)",
			input != nil, output != nil)
	}
	return Example{input: input, output: output}
}

// ExampleFromRows validates the raw input and output rows and returns the
// Example holding them. Grid validation failures are propagated, annotated
// with which of the two grids failed.
func ExampleFromRows(input, output [][]Color) (Example, error) {
	in, err := FromRows(input)
	if err != nil {
		return Example{}, errors.WithMessage(err, "example input")
	}
	out, err := FromRows(output)
	if err != nil {
		return Example{}, errors.WithMessage(err, "example output")
	}
	return Example{input: in, output: out}, nil
}

// Input returns the input grid.
func (e Example) Input() *Grid { return e.input }

// Output returns the output grid.
func (e Example) Output() *Grid { return e.output }

// InputShape returns the shape of the input grid.
func (e Example) InputShape() Shape { return e.input.Shape() }

// OutputShape returns the shape of the output grid.
func (e Example) OutputShape() Shape { return e.output.Shape() }

// Delta returns the shape change from input to output.
func (e Example) Delta() Delta {
	return DeltaBetween(e.InputShape(), e.OutputShape())
}

// String implements stringer.
func (e Example) String() string {
	return fmt.Sprintf("Example[%s -> %s]", e.InputShape(), e.OutputShape())
}
