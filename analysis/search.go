// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/datasets"
	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

// FindTasksByColorCount returns the ids, in ascending order, of the
// split's tasks that use exactly numColors distinct colors across all of
// their grids.
func FindTasksByColorCount(ds *datasets.Dataset, split datasets.Split, numColors int) ([]string, error) {
	if !split.Valid() {
		return nil, errors.Wrapf(datasets.ErrInvalidSplit, "split(%d)", int(split))
	}
	var ids []string
	for id, task := range ds.Tasks(split) {
		if len(task.AllColorsUsed()) == numColors {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FindShapePreservingTasks returns the ids, in ascending order, of the
// split's tasks whose training examples all map a grid to one of the same
// shape. Tasks without training examples are excluded: with no example
// there is no evidence the shape is preserved.
func FindShapePreservingTasks(ds *datasets.Dataset, split datasets.Split) ([]string, error) {
	if !split.Valid() {
		return nil, errors.Wrapf(datasets.ErrInvalidSplit, "split(%d)", int(split))
	}
	var ids []string
	for id, task := range ds.Tasks(split) {
		if task.NumExamples() == 0 || !task.ConsistentShapeChange() {
			continue
		}
		if task.ShapeChanges()[0].IsZero() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// GridMatch is one grid found by FindGridsByShape, with enough context to
// locate it in its dataset.
type GridMatch struct {
	TaskID       string         `json:"task_id"`
	Split        datasets.Split `json:"split"`
	Role         tasks.Role     `json:"role"`
	ExampleIndex int            `json:"example_idx"`
	Grid         *grids.Grid    `json:"-"`
}

// FindGridsByShape returns every grid of exactly the given shape, searching
// the given splits in order; with no splits it searches training then
// evaluation. Within a split, matches order by ascending task id and then
// by the Task.Grids order.
func FindGridsByShape(ds *datasets.Dataset, shape grids.Shape, splits ...datasets.Split) ([]GridMatch, error) {
	if len(splits) == 0 {
		splits = []datasets.Split{datasets.Training, datasets.Evaluation}
	}
	var matches []GridMatch
	for _, split := range splits {
		if !split.Valid() {
			return nil, errors.Wrapf(datasets.ErrInvalidSplit, "split(%d)", int(split))
		}
		for id, task := range ds.Tasks(split) {
			for ref, g := range task.Grids() {
				if g.Shape() != shape {
					continue
				}
				matches = append(matches, GridMatch{
					TaskID:       id,
					Split:        split,
					Role:         ref.Role,
					ExampleIndex: ref.ExampleIndex,
					Grid:         g,
				})
			}
		}
	}
	return matches, nil
}
