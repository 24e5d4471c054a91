package commandline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcscope/arcscope/analysis"
	"github.com/arcscope/arcscope/datasets"
	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

func TestFormatSplitStats(t *testing.T) {
	out := FormatSplitStats(datasets.SplitStats{
		Split:              "training",
		NumTasks:           1234,
		TotalExamples:      4321,
		UniqueShapes:       17,
		MaxGridSize:        30,
		ColorsUsed:         []grids.Color{0, 1, 9},
		UniqueShapeChanges: 5,
	})
	require.Contains(t, out, "training")
	require.Contains(t, out, "# tasks")
	require.Contains(t, out, "1,234")
	require.Contains(t, out, "4,321")
	require.Contains(t, out, "black, blue, maroon")
}

func TestFormatTaskStats(t *testing.T) {
	example, err := grids.ExampleFromRows(
		[][]grids.Color{{1, 1}, {1, 1}},
		[][]grids.Color{{2, 2, 2}, {2, 2, 2}})
	require.NoError(t, err)
	task, err := tasks.New("00d62c1b", []grids.Example{example},
		grids.MustFromRows([][]grids.Color{{3}}))
	require.NoError(t, err)

	out := FormatTaskStats(task.Stats())
	require.Contains(t, out, "00d62c1b")
	require.Contains(t, out, "2x2")
	require.Contains(t, out, "2x3")
	require.Contains(t, out, "withheld", "unsolved tasks have no test output shape")
	require.Contains(t, out, "blue, red, green")
}

func TestFormatSizeSummary(t *testing.T) {
	out := FormatSizeSummary(analysis.SizeSummary{
		NumGrids: 2000,
		MinSize:  1,
		MaxSize:  900,
		MeanSize: 167.25,
	})
	require.Contains(t, out, "2,000")
	require.Contains(t, out, "900")
	require.Contains(t, out, "167.2")
}

func TestFormatDetailedStats(t *testing.T) {
	out := FormatDetailedStats(analysis.DetailedStats{
		NumGrids:       10,
		Height:         analysis.DimensionStats{Min: 1, Max: 30, Mean: 10.5},
		Width:          analysis.DimensionStats{Min: 2, Max: 25, Mean: 9.25},
		Size:           analysis.DimensionStats{Min: 2, Max: 750, Mean: 97.125},
		UniqueShapes:   8,
		SquareCount:    4,
		SquareFraction: 0.4,
		Aspect:         analysis.AspectStats{Min: 0.5, Max: 2, Mean: 1.125},
	})
	require.Contains(t, out, "Dimension")
	require.Contains(t, out, "height")
	require.Contains(t, out, "10.5")
	require.Contains(t, out, "97.1")
	require.Contains(t, out, "40.0%")
	require.Contains(t, out, "1.12")
}

func TestFormatCategories(t *testing.T) {
	out := FormatCategories(map[analysis.SizeCategory]int{
		analysis.Tiny:   3,
		analysis.Medium: 1500,
	})
	// All five bands show, whether observed or not.
	for _, category := range analysis.SizeCategories() {
		require.Contains(t, out, category.String())
	}
	require.Contains(t, out, "1,500")
	require.Contains(t, out, "0")
}

func TestFormatOutliers(t *testing.T) {
	outliers := analysis.Outliers{
		NumGrids: 100,
		P5Size:   4,
		P95Size:  800,
		Small: []analysis.GridRecord{
			{TaskID: "smallest1", Role: tasks.RoleTrainInput, Height: 1, Width: 2, Size: 2},
			{TaskID: "smallest2", Role: tasks.RoleTestInput, Height: 2, Width: 2, Size: 4},
		},
		Large: []analysis.GridRecord{
			{TaskID: "biggest", Role: tasks.RoleTrainOutput, Height: 29, Width: 29, Size: 841},
		},
	}
	out := FormatOutliers(outliers, 0)
	require.Contains(t, out, "Smallest grids (size <= 4)")
	require.Contains(t, out, "Largest grids (size >= 800)")
	require.Contains(t, out, "smallest1")
	require.Contains(t, out, "smallest2")
	require.Contains(t, out, "biggest")
	require.Contains(t, out, "29x29")

	out = FormatOutliers(outliers, 1)
	require.Contains(t, out, "smallest1")
	require.NotContains(t, out, "smallest2", "showN truncates each tail")
}

func TestFormatShapeFrequencies(t *testing.T) {
	frequencies := []analysis.ShapeCount{
		{Shape: grids.Shape{Height: 3, Width: 3}, Count: 2, Fraction: 0.5},
		{Shape: grids.Shape{Height: 1, Width: 2}, Count: 1, Fraction: 0.25},
		{Shape: grids.Shape{Height: 9, Width: 4}, Count: 1, Fraction: 0.25},
	}
	out := FormatShapeFrequencies(frequencies, 0)
	require.Contains(t, out, "3x3")
	require.Contains(t, out, "50.0%")
	require.Contains(t, out, "9x4")

	out = FormatShapeFrequencies(frequencies, 2)
	require.Contains(t, out, "1x2")
	require.NotContains(t, out, "9x4", "topN keeps only the most frequent shapes")
}

func TestFormatGridMatches(t *testing.T) {
	g := grids.MustFromRows([][]grids.Color{{1, 2}})
	out := FormatGridMatches([]analysis.GridMatch{
		{TaskID: "aaaaaaaa", Split: datasets.Training, Role: tasks.RoleTestInput, Grid: g},
		{TaskID: "bbbbbbbb", Split: datasets.Evaluation, Role: tasks.RoleTrainOutput, ExampleIndex: 2, Grid: g},
	})
	require.Contains(t, out, "aaaaaaaa")
	require.Contains(t, out, "training")
	require.Contains(t, out, "evaluation")
	require.Contains(t, out, "train_output")
	require.Contains(t, out, "1x2")
}

func TestNewTableRenders(t *testing.T) {
	table := NewTable(true)
	table.Row("Name", "Value")
	table.Row("answer", "42")
	out := table.Render()
	require.Contains(t, out, "Name")
	require.Contains(t, out, "42")
	require.True(t, strings.Count(out, "\n") >= 3, "bordered table spans multiple lines")
}
