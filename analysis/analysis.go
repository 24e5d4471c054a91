// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package analysis computes corpus-wide reports over loaded datasets:
// flattened per-grid records, size and shape aggregations, fixed size
// bands, outlier extraction and task/grid search.
//
// Every function here returns plain data records; rendering them as
// terminal tables, notebook output or image files belongs to the ui
// packages. Reports follow a two-step shape: Collect flattens a split into
// a []GridRecord once, and the aggregations consume record slices, so one
// collection feeds any number of reports.
package analysis

import (
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/datasets"
	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

// ErrEmptyDataset is returned by aggregations invoked over zero grid
// records. Collecting an empty split is not an error; asking for the mean
// size of nothing is.
var ErrEmptyDataset = errors.New("empty dataset")

// GridRecord is one grid of one task, flattened to the dimensions the
// aggregations and the tabular exports consume. Field names match the
// DataFrame column names.
type GridRecord struct {
	TaskID       string     `json:"task_id"`
	Role         tasks.Role `json:"role"`
	ExampleIndex int        `json:"example_idx"`
	Height       int        `json:"height"`
	Width        int        `json:"width"`
	Size         int        `json:"size"`
	AspectRatio  float64    `json:"aspect_ratio"`
	IsSquare     bool       `json:"is_square"`
}

// RecordFor flattens one grid into its record. ref tells which grid of the
// task it is, the same reference Task.Grids yields.
func RecordFor(taskID string, ref tasks.GridRef, g *grids.Grid) GridRecord {
	shape := g.Shape()
	return GridRecord{
		TaskID:       taskID,
		Role:         ref.Role,
		ExampleIndex: ref.ExampleIndex,
		Height:       shape.Height,
		Width:        shape.Width,
		Size:         shape.Size(),
		AspectRatio:  shape.AspectRatio(),
		IsSquare:     shape.IsSquare(),
	}
}

// Collect flattens every grid of every task of the split into records:
// tasks in ascending id order, and within a task the Task.Grids order
// (training pairs first, then the test grids). An empty split collects to
// an empty slice, not an error.
func Collect(ds *datasets.Dataset, split datasets.Split) ([]GridRecord, error) {
	if !split.Valid() {
		return nil, errors.Wrapf(datasets.ErrInvalidSplit, "split(%d)", int(split))
	}
	var records []GridRecord
	for id, task := range ds.Tasks(split) {
		for ref, g := range task.Grids() {
			records = append(records, RecordFor(id, ref, g))
		}
	}
	return records, nil
}
