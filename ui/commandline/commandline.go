// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package commandline renders dataset, task and analysis records as styled
// terminal tables and ANSI grid drawings. Everything returns a string; the
// CLI decides what to print.
package commandline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/arcscope/arcscope/analysis"
	"github.com/arcscope/arcscope/datasets"
	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/types/xslices"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// Title renders a report section title.
func Title(title string) string {
	return titleStyle.Render(title)
}

// NewTable creates an empty styled table. With withHeader, add the header
// as the first row and it gets the header styling.
func NewTable(withHeader bool) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if withHeader && row == 1 {
				s = headerRowStyle
				return
			}
			switch {
			case row%2 == 0:
				// Even row style.
				s = oddRowStyle
			default:
				// Odd row style
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

func joinShapes(shapes []grids.Shape) string {
	return strings.Join(xslices.Map(shapes, func(s grids.Shape) string { return s.String() }), ", ")
}

func joinDeltas(deltas []grids.Delta) string {
	return strings.Join(xslices.Map(deltas, func(d grids.Delta) string { return d.String() }), ", ")
}

func joinColors(colors []grids.Color) string {
	return strings.Join(xslices.Map(colors, func(c grids.Color) string { return c.String() }), ", ")
}

// FormatSplitStats renders the aggregate statistics of one split.
func FormatSplitStats(stats datasets.SplitStats) string {
	table := NewTable(false)
	table.Row("split", stats.Split)
	table.Row("# tasks", humanize.Comma(int64(stats.NumTasks)))
	table.Row("# training examples", humanize.Comma(int64(stats.TotalExamples)))
	table.Row("# unique shapes", humanize.Comma(int64(stats.UniqueShapes)))
	table.Row("# unique shape changes", humanize.Comma(int64(stats.UniqueShapeChanges)))
	table.Row("max grid dimension", humanize.Comma(int64(stats.MaxGridSize)))
	table.Row("colors used", joinColors(stats.ColorsUsed))
	return table.Render()
}

// FormatTaskStats renders one task's derived statistics.
func FormatTaskStats(stats tasks.Stats) string {
	table := NewTable(false)
	table.Row("task", stats.TaskID)
	table.Row("# examples", humanize.Comma(int64(stats.NumExamples)))
	table.Row("train input shapes", joinShapes(stats.TrainInputShapes))
	table.Row("train output shapes", joinShapes(stats.TrainOutputShapes))
	table.Row("test input shape", stats.TestInputShape.String())
	if stats.TestOutputShape != nil {
		table.Row("test output shape", stats.TestOutputShape.String())
	} else {
		table.Row("test output shape", "withheld")
	}
	table.Row("shape changes", joinDeltas(stats.ShapeChanges))
	table.Row("consistent shape change", fmt.Sprintf("%v", stats.ConsistentShapeChange))
	table.Row("max grid dimension", humanize.Comma(int64(stats.MaxGridSize)))
	table.Row("colors used", joinColors(stats.ColorsUsed))
	return table.Render()
}

// FormatSizeSummary renders the cell-count overview of a record collection.
func FormatSizeSummary(summary analysis.SizeSummary) string {
	table := NewTable(false)
	table.Row("# grids", humanize.Comma(int64(summary.NumGrids)))
	table.Row("min size", humanize.Comma(int64(summary.MinSize)))
	table.Row("max size", humanize.Comma(int64(summary.MaxSize)))
	table.Row("mean size", fmt.Sprintf("%.1f", summary.MeanSize))
	return table.Render()
}

// FormatDetailedStats renders the full dimensional breakdown.
func FormatDetailedStats(stats analysis.DetailedStats) string {
	dims := NewTable(true)
	dims.Row("Dimension", "Min", "Max", "Mean")
	dims.Row("height", humanize.Comma(int64(stats.Height.Min)),
		humanize.Comma(int64(stats.Height.Max)), fmt.Sprintf("%.1f", stats.Height.Mean))
	dims.Row("width", humanize.Comma(int64(stats.Width.Min)),
		humanize.Comma(int64(stats.Width.Max)), fmt.Sprintf("%.1f", stats.Width.Mean))
	dims.Row("size", humanize.Comma(int64(stats.Size.Min)),
		humanize.Comma(int64(stats.Size.Max)), fmt.Sprintf("%.1f", stats.Size.Mean))
	dims.Row("aspect ratio", fmt.Sprintf("%.2f", stats.Aspect.Min),
		fmt.Sprintf("%.2f", stats.Aspect.Max), fmt.Sprintf("%.2f", stats.Aspect.Mean))

	extras := NewTable(false)
	extras.Row("# grids", humanize.Comma(int64(stats.NumGrids)))
	extras.Row("# unique shapes", humanize.Comma(int64(stats.UniqueShapes)))
	extras.Row("# square", humanize.Comma(int64(stats.SquareCount)))
	extras.Row("square fraction", fmt.Sprintf("%.1f%%", 100*stats.SquareFraction))
	return dims.Render() + "\n" + extras.Render()
}

// FormatCategories renders the size-band counts, all five bands even when
// empty.
func FormatCategories(counts map[analysis.SizeCategory]int) string {
	table := NewTable(true)
	table.Row("Category", "Count")
	for _, category := range analysis.SizeCategories() {
		table.Row(category.String(), humanize.Comma(int64(counts[category])))
	}
	return table.Render()
}

func outlierTable(records []analysis.GridRecord, showN int) *lgtable.Table {
	table := NewTable(true)
	table.Row("Task", "Role", "Example", "Shape", "Size")
	if showN > 0 && showN < len(records) {
		records = records[:showN]
	}
	for _, r := range records {
		table.Row(r.TaskID, r.Role.String(), fmt.Sprintf("%d", r.ExampleIndex),
			grids.Shape{Height: r.Height, Width: r.Width}.String(),
			humanize.Comma(int64(r.Size)))
	}
	return table
}

// FormatOutliers renders both size-percentile tails, at most showN grids
// each (0 for all).
func FormatOutliers(outliers analysis.Outliers, showN int) string {
	summary := NewTable(false)
	summary.Row("# grids", humanize.Comma(int64(outliers.NumGrids)))
	summary.Row("p5 size", humanize.Comma(int64(outliers.P5Size)))
	summary.Row("p95 size", humanize.Comma(int64(outliers.P95Size)))

	var b strings.Builder
	b.WriteString(summary.Render())
	b.WriteByte('\n')
	b.WriteString(Title(fmt.Sprintf("Smallest grids (size <= %d)", outliers.P5Size)))
	b.WriteByte('\n')
	b.WriteString(outlierTable(outliers.Small, showN).Render())
	b.WriteByte('\n')
	b.WriteString(Title(fmt.Sprintf("Largest grids (size >= %d)", outliers.P95Size)))
	b.WriteByte('\n')
	b.WriteString(outlierTable(outliers.Large, showN).Render())
	return b.String()
}

// FormatShapeFrequencies renders the topN most frequent shapes (0 for all).
func FormatShapeFrequencies(frequencies []analysis.ShapeCount, topN int) string {
	if topN > 0 && topN < len(frequencies) {
		frequencies = frequencies[:topN]
	}
	table := NewTable(true)
	table.Row("Shape", "Count", "Fraction")
	for _, f := range frequencies {
		table.Row(f.Shape.String(), humanize.Comma(int64(f.Count)),
			fmt.Sprintf("%.1f%%", 100*f.Fraction))
	}
	return table.Render()
}

// FormatGridMatches renders the grids found by a shape search.
func FormatGridMatches(matches []analysis.GridMatch) string {
	table := NewTable(true)
	table.Row("Task", "Split", "Role", "Example", "Shape")
	for _, m := range matches {
		table.Row(m.TaskID, m.Split.String(), m.Role.String(),
			fmt.Sprintf("%d", m.ExampleIndex), m.Grid.Shape().String())
	}
	return table.Render()
}
