// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DataFrame converts the records to a gota frame, one row per grid, for
// ad-hoc slicing in notebooks and for the CSV export. Column names match
// the GridRecord JSON tags.
func DataFrame(records []GridRecord) dataframe.DataFrame {
	n := len(records)
	taskIDs := make([]string, n)
	roles := make([]string, n)
	exampleIdx := make([]int, n)
	heights := make([]int, n)
	widths := make([]int, n)
	sizes := make([]int, n)
	aspects := make([]float64, n)
	squares := make([]bool, n)
	for i, r := range records {
		taskIDs[i] = r.TaskID
		roles[i] = r.Role.String()
		exampleIdx[i] = r.ExampleIndex
		heights[i] = r.Height
		widths[i] = r.Width
		sizes[i] = r.Size
		aspects[i] = r.AspectRatio
		squares[i] = r.IsSquare
	}
	return dataframe.New(
		series.New(taskIDs, series.String, "task_id"),
		series.New(roles, series.String, "role"),
		series.New(exampleIdx, series.Int, "example_idx"),
		series.New(heights, series.Int, "height"),
		series.New(widths, series.Int, "width"),
		series.New(sizes, series.Int, "size"),
		series.New(aspects, series.Float, "aspect_ratio"),
		series.New(squares, series.Bool, "is_square"),
	)
}

// WriteCSV writes the records as CSV, headers included, through the gota
// frame.
func WriteCSV(records []GridRecord, w io.Writer) error {
	df := DataFrame(records)
	return df.WriteCSV(w)
}
