// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package notebook displays grids, tasks and plots inside Jupyter notebooks.
// It supports GoNB [1] and bash_kernel [2]; outside a notebook every display
// function is a no-op.
//
// [1] GoNB: https://github.com/janpfeifer/gonb
// [2] bash_kernel: https://github.com/takluyver/bash_kernel
package notebook

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/janpfeifer/gonb/gonbui"
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/ui/render"
)

// InNotebook returns whether running inside a Jupyter notebook.
func InNotebook() bool {
	return IsBashKernel() || IsGoNB()
}

const bashKernelEnv = "NOTEBOOK_BASH_KERNEL_CAPABILITIES"

// IsBashKernel returns whether running in a Jupyter notebook with a bash_kernel.
func IsBashKernel() bool {
	_, found := os.LookupEnv(bashKernelEnv)
	return found
}

const goNBKernelEnv = "GONB_PIPE"

// IsGoNB returns whether running in a Jupyter notebook with a GoNB kernel.
func IsGoNB() bool {
	_, found := os.LookupEnv(goNBKernelEnv)
	return found
}

// DisplayHTML shows the HTML content in the current notebook cell. Outside
// a notebook it is a no-op.
func DisplayHTML(html string) error {
	switch {
	case IsGoNB():
		gonbui.DisplayHTML(html)
	case IsBashKernel():
		return outputHTMLToBashKernel(html)
	}
	return nil
}

// bashKernelHTMLPrefix is the line prefix the bash_kernel watches for: the
// file that follows holds HTML content to be displayed.
const bashKernelHTMLPrefix = "bash_kernel: saved html data to: "

func outputHTMLToBashKernel(html string) error {
	file, err := os.CreateTemp("", "arcscope.notebook.*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary file for HTML output")
	}
	fileName := file.Name()
	_, err = fmt.Fprint(file, html)
	if err != nil {
		return errors.Wrapf(err, "failed to write to temporary file %q for HTML output", fileName)
	}
	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "failed to close temporary file %q for HTML output", fileName)
	}
	fmt.Printf("%s%s\n", bashKernelHTMLPrefix, fileName)
	return nil
}

// EmbedImageSrc returns a string that can be used in an HTML <img> tag, as its
// source (its `src` field) -- without requiring separate files. It embeds the
// image as a PNG file base64 encoded.
func EmbedImageSrc(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode image as PNG")
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return fmt.Sprintf("data:image/png;base64,%s", encoded), nil
}

func displayImage(img image.Image) error {
	src, err := EmbedImageSrc(img)
	if err != nil {
		return err
	}
	return DisplayHTML(fmt.Sprintf("<img src=%q/>", src))
}

// DisplayGrid draws the grid in the current notebook cell, cellSize pixels
// per cell.
func DisplayGrid(g *grids.Grid, cellSize int) error {
	return displayImage(render.Scaled(g, cellSize))
}

// DisplayTask draws the task's training pairs and test grids in the current
// notebook cell, cellSize pixels per cell.
func DisplayTask(t *tasks.Task, cellSize int) error {
	return displayImage(render.TaskImage(t, cellSize))
}
