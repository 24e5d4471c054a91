// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package tasks

import (
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/types/xslices"
)

// Stats is the summary record of one task, the plain-data form reporting
// layers consume. TestOutputShape is nil when the answer is withheld.
type Stats struct {
	TaskID                string        `json:"task_id"`
	NumExamples           int           `json:"num_examples"`
	TrainInputShapes      []grids.Shape `json:"train_input_shapes"`
	TrainOutputShapes     []grids.Shape `json:"train_output_shapes"`
	TestInputShape        grids.Shape   `json:"test_input_shape"`
	TestOutputShape       *grids.Shape  `json:"test_output_shape,omitempty"`
	ColorsUsed            []grids.Color `json:"colors_used"`
	ShapeChanges          []grids.Delta `json:"shape_changes"`
	ConsistentShapeChange bool          `json:"consistent_shape_change"`
	MaxGridSize           int           `json:"max_grid_size"`
}

// Stats assembles the task's summary record. ColorsUsed is in ascending
// color order.
func (t *Task) Stats() Stats {
	s := Stats{
		TaskID:                t.id,
		NumExamples:           len(t.train),
		TrainInputShapes:      t.TrainInputShapes(),
		TrainOutputShapes:     t.TrainOutputShapes(),
		TestInputShape:        t.testInput.Shape(),
		ColorsUsed:            xslices.SortedKeys(t.AllColorsUsed()),
		ShapeChanges:          t.ShapeChanges(),
		ConsistentShapeChange: t.ConsistentShapeChange(),
		MaxGridSize:           t.MaxGridSize(),
	}
	if t.testOutput != nil {
		shape := t.testOutput.Shape()
		s.TestOutputShape = &shape
	}
	return s
}
