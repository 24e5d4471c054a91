// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package render turns grids and tasks into Go images: one pixel per cell
// through GridImage, upscaled crisp-cell versions through Scaled and whole
// task montages through TaskImage. The ui packages and the CLI build their
// visual output on top of it.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

// Palette maps the ten cell colors to their display colors, indexed by
// grids.Color: black, blue, red, green, yellow, grey, fuchsia, orange,
// teal and maroon.
var Palette = [10]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x74, B: 0xD9, A: 0xFF},
	{R: 0xFF, G: 0x41, B: 0x36, A: 0xFF},
	{R: 0x2E, G: 0xCC, B: 0x40, A: 0xFF},
	{R: 0xFF, G: 0xDC, B: 0x00, A: 0xFF},
	{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
	{R: 0xF0, G: 0x12, B: 0xBE, A: 0xFF},
	{R: 0xFF, G: 0x85, B: 0x1B, A: 0xFF},
	{R: 0x7F, G: 0xDB, B: 0xFF, A: 0xFF},
	{R: 0x87, G: 0x0C, B: 0x25, A: 0xFF},
}

// ColorOf returns the display color of a cell color. Values outside the
// palette render white, so out-of-range cells are visible instead of
// silently black.
func ColorOf(c grids.Color) color.RGBA {
	if c < 0 || int(c) >= len(Palette) {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return Palette[c]
}

// GridImage presents a grid as an image.Image, one pixel per cell.
type GridImage struct {
	grid *grids.Grid
}

var _ image.Image = (*GridImage)(nil)

// Image wraps the grid as an image without copying any cells.
func Image(g *grids.Grid) *GridImage {
	return &GridImage{grid: g}
}

// ColorModel implements the image.Image interface.
func (img *GridImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (img *GridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.grid.Width(), img.grid.Height())
}

// At implements the image.Image interface. x selects the column and y the
// row, following the image coordinate convention.
func (img *GridImage) At(x, y int) color.Color {
	return ColorOf(img.grid.At(y, x))
}

// Scaled renders the grid with cellSize x cellSize pixels per cell.
// Upscaling is nearest-neighbor, so cells stay crisp squares.
func Scaled(g *grids.Grid, cellSize int) image.Image {
	if cellSize < 1 {
		cellSize = 1
	}
	return imaging.Resize(Image(g), g.Width()*cellSize, g.Height()*cellSize, imaging.NearestNeighbor)
}

// Cell count of the montage gutters, in cells.
const montageGutter = 1

// TaskImage renders the whole task as a montage: one row per training
// example with the input beside its output, and a final row with the test
// input and, when the answer is known, the test output.
func TaskImage(t *tasks.Task, cellSize int) image.Image {
	if cellSize < 1 {
		cellSize = 1
	}
	type pair struct {
		left, right *grids.Grid // right == nil for an unsolved test row.
	}
	rows := make([]pair, 0, t.NumExamples()+1)
	for _, example := range t.Train() {
		rows = append(rows, pair{left: example.Input(), right: example.Output()})
	}
	testRow := pair{left: t.TestInput()}
	if out, ok := t.TestOutput(); ok {
		testRow.right = out
	}
	rows = append(rows, testRow)

	// Canvas dimensions in cells, a gutter between the columns and between
	// the rows.
	widthCells, heightCells := 0, 0
	for _, row := range rows {
		w := row.left.Width()
		h := row.left.Height()
		if row.right != nil {
			w += montageGutter + row.right.Width()
			h = max(h, row.right.Height())
		}
		widthCells = max(widthCells, w)
		heightCells += h + montageGutter
	}
	heightCells -= montageGutter

	canvas := imaging.New(widthCells*cellSize, heightCells*cellSize, color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF})
	y := 0
	for _, row := range rows {
		canvas = imaging.Paste(canvas, Scaled(row.left, cellSize), image.Pt(0, y*cellSize))
		rowHeight := row.left.Height()
		if row.right != nil {
			x := row.left.Width() + montageGutter
			canvas = imaging.Paste(canvas, Scaled(row.right, cellSize), image.Pt(x*cellSize, y*cellSize))
			rowHeight = max(rowHeight, row.right.Height())
		}
		y += rowHeight + montageGutter
	}
	return canvas
}

// SavePNG writes the image as PNG, creating or truncating the file.
func SavePNG(img image.Image, filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed creating %q", filePath)
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed encoding PNG to %q", filePath)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "failed closing %q", filePath)
	}
	return nil
}
