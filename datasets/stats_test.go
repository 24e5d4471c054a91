package datasets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

func mustTask(t *testing.T, id string, train []grids.Example, testInput, testOutput *grids.Grid) *tasks.Task {
	t.Helper()
	var task *tasks.Task
	var err error
	if testOutput == nil {
		task, err = tasks.New(id, train, testInput)
	} else {
		task, err = tasks.NewSolved(id, train, testInput, testOutput)
	}
	require.NoError(t, err)
	return task
}

func TestSplitStatsEmpty(t *testing.T) {
	ds := New("/tmp/arc")
	stats, err := ds.SplitStats(Training)
	require.NoError(t, err)
	require.Equal(t, SplitStats{Split: "training"}, stats)
}

func TestSplitStatsInvalidSplit(t *testing.T) {
	ds := New("/tmp/arc")
	_, err := ds.SplitStats(Split(99))
	require.ErrorIs(t, err, ErrInvalidSplit)
}

func TestSplitStats(t *testing.T) {
	ds := New("/tmp/arc")

	// Shapes 2x2 and 1x1, colors {0,1,2,3}, delta (-1,-1), max dimension 2.
	exA, err := grids.ExampleFromRows(
		[][]grids.Color{{0, 1}, {1, 0}},
		[][]grids.Color{{2}})
	require.NoError(t, err)
	ds.splits[Training]["a"] = mustTask(t, "a", []grids.Example{exA},
		grids.MustFromRows([][]grids.Color{{0}}),
		grids.MustFromRows([][]grids.Color{{3}}))

	// Shapes 1x3, 3x1 and 2x3, colors {4,5,6}, delta (0,0), max dimension 3.
	exB0, err := grids.ExampleFromRows(
		[][]grids.Color{{4, 4, 4}},
		[][]grids.Color{{4, 4, 4}})
	require.NoError(t, err)
	exB1, err := grids.ExampleFromRows(
		[][]grids.Color{{5}, {5}, {5}},
		[][]grids.Color{{5}, {5}, {5}})
	require.NoError(t, err)
	ds.splits[Training]["b"] = mustTask(t, "b", []grids.Example{exB0, exB1},
		grids.MustFromRows([][]grids.Color{{6, 6, 6}, {6, 6, 6}}), nil)

	stats, err := ds.SplitStats(Training)
	require.NoError(t, err)
	require.Equal(t, "training", stats.Split)
	require.Equal(t, 2, stats.NumTasks)
	require.Equal(t, 3, stats.TotalExamples)
	require.Equal(t, 5, stats.UniqueShapes)
	require.Equal(t, 3, stats.MaxGridSize)
	require.Equal(t, []grids.Color{0, 1, 2, 3, 4, 5, 6}, stats.ColorsUsed)
	require.Equal(t, 2, stats.UniqueShapeChanges)

	// The other splits are not consulted.
	evalStats, err := ds.SplitStats(Evaluation)
	require.NoError(t, err)
	require.Equal(t, 0, evalStats.NumTasks)
}

// A test output shape counts towards the shape pool even though it is
// excluded from MaxGridSize.
func TestSplitStatsTestOutputShape(t *testing.T) {
	ds := New("/tmp/arc")
	ex, err := grids.ExampleFromRows(
		[][]grids.Color{{1}},
		[][]grids.Color{{1}})
	require.NoError(t, err)
	rows := make([][]grids.Color, 9)
	for i := range rows {
		rows[i] = []grids.Color{1, 1, 1, 1, 1, 1, 1, 1, 1}
	}
	ds.splits[Evaluation]["solo"] = mustTask(t, "solo", []grids.Example{ex},
		grids.MustFromRows([][]grids.Color{{1}}),
		grids.MustFromRows(rows))

	stats, err := ds.SplitStats(Evaluation)
	require.NoError(t, err)
	require.Equal(t, 2, stats.UniqueShapes, "expected shapes 1x1 and 9x9")
	require.Equal(t, 1, stats.MaxGridSize)
}
