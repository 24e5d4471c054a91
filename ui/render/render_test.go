package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

// rgbaAt converts whatever color model the image uses to RGBA for
// comparison against the palette.
func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestColorOf(t *testing.T) {
	require.Equal(t, color.RGBA{A: 0xFF}, ColorOf(0), "0 is black")
	require.Equal(t, color.RGBA{R: 0x00, G: 0x74, B: 0xD9, A: 0xFF}, ColorOf(1), "1 is blue")
	require.Equal(t, color.RGBA{R: 0x87, G: 0x0C, B: 0x25, A: 0xFF}, ColorOf(9), "9 is maroon")

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	require.Equal(t, white, ColorOf(10))
	require.Equal(t, white, ColorOf(-1))
}

func TestGridImage(t *testing.T) {
	g := grids.MustFromRows([][]grids.Color{{0, 1}, {2, 3}})
	img := Image(g)
	require.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	// x is the column, y the row.
	require.Equal(t, Palette[0], rgbaAt(img, 0, 0))
	require.Equal(t, Palette[1], rgbaAt(img, 1, 0))
	require.Equal(t, Palette[2], rgbaAt(img, 0, 1))
	require.Equal(t, Palette[3], rgbaAt(img, 1, 1))
}

func TestScaled(t *testing.T) {
	g := grids.MustFromRows([][]grids.Color{{1, 2}})
	img := Scaled(g, 3)
	require.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())
	require.Equal(t, Palette[1], rgbaAt(img, 0, 0))
	require.Equal(t, Palette[1], rgbaAt(img, 2, 2))
	require.Equal(t, Palette[2], rgbaAt(img, 3, 0))
	require.Equal(t, Palette[2], rgbaAt(img, 5, 2))

	// A degenerate cell size renders one pixel per cell.
	img = Scaled(g, 0)
	require.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
}

func TestTaskImage(t *testing.T) {
	example, err := grids.ExampleFromRows(
		[][]grids.Color{{1, 1}, {1, 1}},
		[][]grids.Color{{2, 2, 2}, {2, 2, 2}})
	require.NoError(t, err)
	testInput := grids.MustFromRows([][]grids.Color{{3}})
	testOutput := grids.MustFromRows([][]grids.Color{{4}})

	task, err := tasks.NewSolved("007bbfb7", []grids.Example{example}, testInput, testOutput)
	require.NoError(t, err)

	// Widest row: 2 + 1 gutter + 3 = 6 cells. Height: 2 + 1 gutter + 1 = 4.
	img := TaskImage(task, 2)
	require.Equal(t, image.Rect(0, 0, 12, 8), img.Bounds())
	require.Equal(t, Palette[1], rgbaAt(img, 0, 0), "train input top-left")
	require.Equal(t, Palette[2], rgbaAt(img, 3*2, 0), "train output starts after the gutter")
	require.Equal(t, Palette[3], rgbaAt(img, 0, 3*2), "test input below the gutter row")
	require.Equal(t, Palette[4], rgbaAt(img, 2*2, 3*2), "test output beside the test input")

	{ // Unsolved: the test row only has its input.
		task, err := tasks.New("007bbfb7", []grids.Example{example}, testInput)
		require.NoError(t, err)
		img := TaskImage(task, 1)
		require.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
		require.Equal(t, Palette[3], rgbaAt(img, 0, 3))
		require.NotEqual(t, Palette[4], rgbaAt(img, 2, 3))
	}
}

func TestSavePNG(t *testing.T) {
	g := grids.MustFromRows([][]grids.Color{{5, 6}, {7, 8}})
	filePath := path.Join(t.TempDir(), "grid.png")
	require.NoError(t, SavePNG(Scaled(g, 4), filePath))

	f, err := os.Open(filePath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	require.Equal(t, Palette[5], rgbaAt(img, 0, 0))
	require.Equal(t, Palette[8], rgbaAt(img, 7, 7))
}
