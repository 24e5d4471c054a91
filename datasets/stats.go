// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/types"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/types/xslices"
)

// SplitStats aggregates over every task of one split. It is plain data for
// reporting layers; an empty split yields a zero-valued record.
type SplitStats struct {
	Split              string        `json:"split"`
	NumTasks           int           `json:"num_tasks"`
	TotalExamples      int           `json:"total_examples"`
	UniqueShapes       int           `json:"unique_shapes"`
	MaxGridSize        int           `json:"max_grid_size"`
	ColorsUsed         []grids.Color `json:"colors_used"`
	UniqueShapeChanges int           `json:"unique_shape_changes"`
}

// SplitStats computes the aggregate statistics of one split: task count,
// total training examples, distinct shapes (pooling train input and output
// shapes plus test input and, when present, test output shapes), the
// largest single grid dimension, the sorted union of colors used and the
// number of distinct shape changes.
//
// An empty split returns a zero-valued record, not an error. A bad selector
// fails wrapping ErrInvalidSplit.
func (ds *Dataset) SplitStats(split Split) (SplitStats, error) {
	if !split.Valid() {
		return SplitStats{}, errors.Wrapf(ErrInvalidSplit, "split(%d)", int(split))
	}
	stats := SplitStats{Split: split.String()}
	m := ds.splits[split]
	if len(m) == 0 {
		return stats, nil
	}

	shapes := types.MakeSet[grids.Shape]()
	colors := types.MakeSet[grids.Color]()
	deltas := types.MakeSet[grids.Delta]()
	for _, task := range m {
		stats.NumTasks++
		stats.TotalExamples += task.NumExamples()
		for _, shape := range task.TrainInputShapes() {
			shapes.Insert(shape)
		}
		for _, shape := range task.TrainOutputShapes() {
			shapes.Insert(shape)
		}
		shapes.Insert(task.TestInput().Shape())
		if out, ok := task.TestOutput(); ok {
			shapes.Insert(out.Shape())
		}
		colors.Merge(task.AllColorsUsed())
		for _, delta := range task.ShapeChanges() {
			deltas.Insert(delta)
		}
		if maxSize := task.MaxGridSize(); maxSize > stats.MaxGridSize {
			stats.MaxGridSize = maxSize
		}
	}
	stats.UniqueShapes = len(shapes)
	stats.ColorsUsed = xslices.SortedKeys(colors)
	stats.UniqueShapeChanges = len(deltas)
	return stats, nil
}
