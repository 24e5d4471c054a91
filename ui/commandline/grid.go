// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package commandline

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/ui/render"
)

// FormatGrid renders the grid for the current terminal: two-space colored
// blocks per cell, or the plain digit form when the terminal has no color
// support.
func FormatGrid(g *grids.Grid) string {
	return FormatGridProfile(g, termenv.NewOutput(os.Stdout).Profile)
}

// FormatGridProfile renders the grid for an explicit termenv profile.
func FormatGridProfile(g *grids.Grid, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return g.String()
	}
	var b strings.Builder
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Width(); col++ {
			b.WriteString(cellBlock(profile, g.At(row, col)))
		}
	}
	return b.String()
}

// cellBlock is one cell as a colored two-space block, through the shared
// display palette.
func cellBlock(profile termenv.Profile, c grids.Color) string {
	rgba := render.ColorOf(c)
	hex := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	return profile.String("  ").Background(profile.Color(hex)).String()
}

// FormatTask renders the whole task for the current terminal: every
// training pair and then the test grids, each section labeled with its
// shape.
func FormatTask(t *tasks.Task) string {
	return FormatTaskProfile(t, termenv.NewOutput(os.Stdout).Profile)
}

// FormatTaskProfile renders the whole task for an explicit termenv profile.
func FormatTaskProfile(t *tasks.Task, profile termenv.Profile) string {
	var b strings.Builder
	for i, example := range t.Train() {
		fmt.Fprintf(&b, "Example %d input (%s):\n%s\n", i+1,
			example.InputShape(), FormatGridProfile(example.Input(), profile))
		fmt.Fprintf(&b, "Example %d output (%s):\n%s\n", i+1,
			example.OutputShape(), FormatGridProfile(example.Output(), profile))
	}
	fmt.Fprintf(&b, "Test input (%s):\n%s\n",
		t.TestInput().Shape(), FormatGridProfile(t.TestInput(), profile))
	if out, ok := t.TestOutput(); ok {
		fmt.Fprintf(&b, "Test output (%s):\n%s\n",
			out.Shape(), FormatGridProfile(out, profile))
	}
	return b.String()
}
