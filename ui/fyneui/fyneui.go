// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package fyneui implements a simple GUI task browser: one window per dataset
// split, paging through its tasks with the training pairs and test grids drawn
// side by side.
//
// Fyne requires the main goroutine for its event loop, so wrap your main
// function:
//
//	func main() {
//		flag.Parse()
//		fyneui.RunMain(mainContinue)
//	}
//
//	func mainContinue() {
//		// usual main() code, calling fyneui.Browse(...) somewhere.
//	}
//
// Without a graphical display RunMain simply runs the function.
package fyneui

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/arcscope/arcscope/datasets"
	"github.com/arcscope/arcscope/types/xsync"
	"github.com/arcscope/arcscope/ui/render"
)

var (
	// App holds the current Fyne App singleton, created by RunMain when a
	// graphical display is available.
	App fyne.App

	numWindowsOpened   int
	muNumWindowsOpened sync.Mutex
	condNumWindowsOpen = sync.NewCond(&muNumWindowsOpened)
)

// HasWindows checks if the environment has a graphical display available by
// verifying the DISPLAY environment variable.
func HasWindows() bool {
	return os.Getenv("DISPLAY") != ""
}

// RunMain executes main on a separate goroutine, reserving the current one
// (presumably the main goroutine) for the Fyne event loop. Call it once at
// the beginning of your main function.
//
// Without a graphical display it simply runs main and returns.
func RunMain(main func()) {
	if !HasWindows() {
		main()
		return
	}

	var exception any
	done := xsync.NewLatch()
	onInterrupt := make(chan os.Signal, 1)
	go func() {
		<-onInterrupt
		exception = "Interrupt (control+C) signal received."
		done.Trigger()
		App.Quit()
	}()

	go func() {
		// Override the interrupt behavior installed by Fyne.
		signal.Reset(os.Interrupt)
		signal.Notify(onInterrupt, os.Interrupt)
		exception = exceptions.Try(main)
		done.Trigger()
		if exception == nil {
			// Normal end, wait for the user to close the windows.
			muNumWindowsOpened.Lock()
			if numWindowsOpened > 0 {
				fmt.Println("Waiting for windows to close...")
			}
			muNumWindowsOpened.Unlock()
			WaitForWindows()
		}
		App.Quit()
	}()
	App = app.New()
	App.Run()

	// Once App.Run returns, all windows are definitely closed. Reset the
	// counter in case some window was not cleanly closed, so a late
	// WaitForWindows() does not block.
	condNumWindowsOpen.L.Lock()
	numWindowsOpened = 0
	condNumWindowsOpen.Broadcast()
	condNumWindowsOpen.L.Unlock()

	// Wait for the main goroutine to finish and any exceptions to be reported.
	done.Wait()

	if exception != nil {
		klog.Fatalf("Panic:\n%+v", exception)
	}
}

// WaitForWindows waits for all GUI windows to be closed by the user.
//
// Usually RunMain will automatically call this function at the end of the
// program. But it's available if the user wants some sync point.
func WaitForWindows() {
	condNumWindowsOpen.L.Lock()
	defer condNumWindowsOpen.L.Unlock()
	for numWindowsOpened > 0 {
		condNumWindowsOpen.Wait()
	}
}

func windowOpened(w fyne.Window) {
	muNumWindowsOpened.Lock()
	numWindowsOpened++
	muNumWindowsOpened.Unlock()
	w.SetOnClosed(func() {
		condNumWindowsOpen.L.Lock()
		numWindowsOpened--
		if numWindowsOpened <= 0 {
			condNumWindowsOpen.Broadcast()
		}
		condNumWindowsOpen.L.Unlock()
	})
}

// Browser is a window paging through the tasks of one dataset split.
type Browser struct {
	ds       *datasets.Dataset
	split    datasets.Split
	ids      []string
	idx      int
	cellSize int

	win        fyne.Window
	image      *canvas.Image
	title      *widget.Label
	info       *widget.Label
	prev, next *widget.Button
}

// Browse opens a window paging through the tasks of the split, cellSize
// pixels per grid cell. It returns once the window is shown; use RunMain (or
// WaitForWindows) to wait for the user to close it.
func Browse(ds *datasets.Dataset, split datasets.Split, cellSize int) (*Browser, error) {
	if !split.Valid() {
		return nil, errors.Wrapf(datasets.ErrInvalidSplit, "cannot browse split %q", split)
	}
	ids := ds.TaskIDs(split)
	if len(ids) == 0 {
		return nil, errors.Wrapf(datasets.ErrNotFound, "the %s split has no tasks to browse", split)
	}

	b := &Browser{
		ds:       ds,
		split:    split,
		ids:      ids,
		cellSize: cellSize,
		image:    canvas.NewImageFromImage(nil),
		title:    widget.NewLabel(""),
		info:     widget.NewLabel(""),
	}
	b.image.FillMode = canvas.ImageFillOriginal
	b.title.Alignment = fyne.TextAlignCenter
	b.title.TextStyle = fyne.TextStyle{Bold: true}
	b.info.Alignment = fyne.TextAlignCenter
	b.prev = widget.NewButton("< Prev", func() { b.Show(b.idx - 1) })
	b.next = widget.NewButton("Next >", func() { b.Show(b.idx + 1) })
	closeButton := widget.NewButton("Close", func() { b.win.Close() })

	buttonStrip := container.NewHBox(
		b.prev, layout.NewSpacer(), closeButton, layout.NewSpacer(), b.next)
	mainVBox := container.NewVBox(b.title, container.NewCenter(b.image), b.info, buttonStrip)

	b.win = App.NewWindow(fmt.Sprintf("ArcScope: %s split", split))
	windowOpened(b.win)
	b.win.SetContent(mainVBox)
	b.Show(0)
	b.win.Show()
	return b, nil
}

// Show jumps to the idx-th task of the split. Out-of-range values are
// clamped.
func (b *Browser) Show(idx int) {
	idx = min(max(idx, 0), len(b.ids)-1)
	b.idx = idx
	id := b.ids[idx]
	task, err := b.ds.Get(b.split, id)
	if err != nil {
		klog.Errorf("Failed to fetch task %q from the %s split: %+v", id, b.split, err)
		return
	}

	img := render.TaskImage(task, b.cellSize)
	b.image.Image = img
	b.image.SetMinSize(fyne.NewSize(float32(img.Bounds().Dx()), float32(img.Bounds().Dy())))
	b.image.Refresh()
	b.title.SetText(fmt.Sprintf("%s (%d of %d)", id, idx+1, len(b.ids)))

	stats := task.Stats()
	b.info.SetText(fmt.Sprintf("%d training examples, max grid dimension %d, %d colors",
		stats.NumExamples, stats.MaxGridSize, len(stats.ColorsUsed)))

	if idx == 0 {
		b.prev.Disable()
	} else {
		b.prev.Enable()
	}
	if idx == len(b.ids)-1 {
		b.next.Disable()
	} else {
		b.next.Enable()
	}
}
