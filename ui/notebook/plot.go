// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package notebook

import (
	"bytes"

	mg "github.com/erkkah/margaid"
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/analysis"
	"github.com/arcscope/arcscope/types/xslices"
)

// SizeDistributionHTML draws the grid-size distribution of the records as an
// SVG of the given pixel dimensions, returning the HTML code for it.
func SizeDistributionHTML(records []analysis.GridRecord, width, height int) (string, error) {
	if len(records) == 0 {
		return "", errors.Wrap(analysis.ErrEmptyDataset, "nothing to plot")
	}
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Size]++
	}
	series := mg.NewSeries(mg.Titled("# grids"))
	for _, size := range xslices.SortedKeys(counts) {
		series.Add(mg.MakeValue(float64(size), float64(counts[size])))
	}

	diagram := mg.New(width, height,
		mg.WithAutorange(mg.XAxis, series),
		mg.WithAutorange(mg.YAxis, series),
		mg.WithInset(70),
		mg.WithPadding(2),
		mg.WithColorScheme(90),
		mg.WithBackgroundColor("#f8f8f8"),
	)
	diagram.Line(series, mg.UsingAxes(mg.XAxis, mg.YAxis), mg.UsingMarker("square"), mg.UsingStrokeWidth(2))
	diagram.Axis(series, mg.XAxis, diagram.ValueTicker('f', 0, 10), false, "Grid size (cells)")
	diagram.Axis(series, mg.YAxis, diagram.ValueTicker('f', 0, 10), true, "# grids")
	diagram.Frame()
	diagram.Title("Grid size distribution")

	buf := bytes.NewBuffer(nil)
	err := diagram.Render(buf)
	if err != nil {
		return "", errors.Wrap(err, "failed to render the size distribution plot")
	}
	return buf.String(), nil
}

// PlotSizeDistribution draws the grid-size distribution of the records in the
// current notebook cell. Outside a notebook it is a no-op.
func PlotSizeDistribution(records []analysis.GridRecord, width, height int) error {
	html, err := SizeDistributionHTML(records, width, height)
	if err != nil {
		return err
	}
	return DisplayHTML(html)
}
