// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package tasks models one ARC puzzle: an ordered list of worked
// (input, output) training examples, one held-out test input and, when the
// ground truth is known, the expected test output.
//
// Tasks are immutable once built. Use New for tasks whose answer is withheld
// (the corpus "test" split) and NewSolved when the test output is available
// (training and evaluation splits); TestOutput reports which case holds.
package tasks

import (
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/types"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/types/xslices"
)

// ErrInvalidTask is the cause of all task construction failures.
var ErrInvalidTask = errors.New("invalid task")

// Task is one ARC puzzle. The training examples keep their presentation
// order. Exactly one test input is present; the test output is optional.
type Task struct {
	id         string
	train      []grids.Example
	testInput  *grids.Grid
	testOutput *grids.Grid // nil when the answer is withheld.
}

// New creates a Task without a test output (answer withheld).
//
// The train slice may be empty; it is copied, so the caller keeps ownership
// of its own slice. Fails wrapping ErrInvalidTask on an empty id or nil
// test input.
func New(id string, train []grids.Example, testInput *grids.Grid) (*Task, error) {
	if id == "" {
		return nil, errors.Wrap(ErrInvalidTask, "task id is empty")
	}
	if testInput == nil {
		return nil, errors.Wrapf(ErrInvalidTask, "task %q has no test input grid", id)
	}
	return &Task{id: id, train: xslices.Copy(train), testInput: testInput}, nil
}

// NewSolved creates a Task with a known test output.
// Fails wrapping ErrInvalidTask if testOutput is nil -- use New for tasks
// without an answer.
func NewSolved(id string, train []grids.Example, testInput, testOutput *grids.Grid) (*Task, error) {
	if testOutput == nil {
		return nil, errors.Wrapf(ErrInvalidTask, "task %q: NewSolved requires a test output grid", id)
	}
	t, err := New(id, train, testInput)
	if err != nil {
		return nil, err
	}
	t.testOutput = testOutput
	return t, nil
}

// ID returns the task identifier.
func (t *Task) ID() string { return t.id }

// NumExamples returns the number of training examples.
func (t *Task) NumExamples() int { return len(t.train) }

// Train returns a copy of the training examples, in presentation order.
func (t *Task) Train() []grids.Example { return xslices.Copy(t.train) }

// TestInput returns the test input grid.
func (t *Task) TestInput() *grids.Grid { return t.testInput }

// TestOutput returns the expected test output grid and true when the ground
// truth is known, or (nil, false) when the answer is withheld.
func (t *Task) TestOutput() (*grids.Grid, bool) {
	return t.testOutput, t.testOutput != nil
}

// TrainInputShapes returns the shapes of the training input grids, in
// presentation order.
func (t *Task) TrainInputShapes() []grids.Shape {
	return xslices.Map(t.train, func(ex grids.Example) grids.Shape { return ex.InputShape() })
}

// TrainOutputShapes returns the shapes of the training output grids, in
// presentation order.
func (t *Task) TrainOutputShapes() []grids.Shape {
	return xslices.Map(t.train, func(ex grids.Example) grids.Shape { return ex.OutputShape() })
}

// ShapeChanges returns each training example's shape delta, in presentation
// order.
func (t *Task) ShapeChanges() []grids.Delta {
	return xslices.Map(t.train, func(ex grids.Example) grids.Delta { return ex.Delta() })
}

// ConsistentShapeChange returns whether every training example shares the
// same shape delta. A task with no training examples is vacuously consistent.
func (t *Task) ConsistentShapeChange() bool {
	deltas := types.MakeSet[grids.Delta]()
	for _, ex := range t.train {
		deltas.Insert(ex.Delta())
	}
	return len(deltas) <= 1
}

// AllColorsUsed returns the union of the distinct colors of every grid in
// the task: training inputs, training outputs, the test input and, when
// present, the test output.
func (t *Task) AllColorsUsed() types.Set[grids.Color] {
	colors := types.MakeSet[grids.Color]()
	for _, g := range t.Grids() {
		colors.Merge(g.UniqueColors())
	}
	return colors
}

// MaxGridSize returns the largest single dimension (height or width) over
// the training grids and the test input. The test output does not enter this
// maximum even when present -- note the asymmetry with AllColorsUsed, which
// does include it.
func (t *Task) MaxGridSize() int {
	maxDim := 0
	consider := func(g *grids.Grid) {
		if g.Height() > maxDim {
			maxDim = g.Height()
		}
		if g.Width() > maxDim {
			maxDim = g.Width()
		}
	}
	for _, ex := range t.train {
		consider(ex.Input())
		consider(ex.Output())
	}
	consider(t.testInput)
	return maxDim
}
