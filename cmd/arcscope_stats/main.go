// arcscope_stats reports statistics over the public ARC-AGI corpus: aggregate
// and per-task tables, grid drawings on the terminal, size distributions as
// CSV, HTML or PNG plots, and an optional GUI task browser.
//
// The dataset JSON files are expected under -data, with the Kaggle file
// names; -download_url fetches any missing file first.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/arcscope/arcscope/analysis"
	"github.com/arcscope/arcscope/datasets"
	"github.com/arcscope/arcscope/types/grids"
	"github.com/arcscope/arcscope/ui/commandline"
	"github.com/arcscope/arcscope/ui/fyneui"
)

var (
	flagData = flag.String("data", "~/work/arc", "Directory holding the dataset JSON files, "+
		"using the Kaggle file names (e.g. arc-agi_training_challenges.json).")
	flagSplit       = flag.String("split", "training", "Dataset split the reports cover: training, evaluation or test.")
	flagDownloadURL = flag.String("download_url", "", "Base URL to download missing dataset files from, "+
		"before loading. The corpus requires Kaggle authentication, so there is no default.")

	flagSummary = flag.Bool("summary", false, "Display the aggregate statistics of the selected split. "+
		"This is the default report when no other is selected.")
	flagTask = flag.String("task", "", "Display the statistics table of one task, given by id.")
	flagShow = flag.String("show", "", "Draw one task's grids on the terminal, given by id.")

	flagDetails    = flag.Bool("details", false, "Display the detailed dimension statistics of the selected split.")
	flagCategories = flag.Bool("categories", false, "Display the grid counts per size band of the selected split.")
	flagOutliers   = flag.Int("outliers", 0, "Display up to this many grids on each size-percentile tail. "+
		"0 disables the report, -1 displays all.")
	flagShapes = flag.Int("shapes", 0, "Display the N most frequent grid shapes of the selected split. "+
		"0 disables the report, -1 displays all.")

	flagColorCount      = flag.Int("color_count", 0, "List the tasks of the selected split using exactly this many colors.")
	flagShapePreserving = flag.Bool("shape_preserving", false,
		"List the tasks of the selected split whose outputs consistently keep the input shape.")
	flagFindShape = flag.String("find_shape", "", "Find grids of exactly this shape, e.g. \"3x4\". "+
		"Searches the training and evaluation splits.")

	flagCSV = flag.String("csv", "", "Write the per-grid records of the selected split to this CSV file.")

	flagGUI = flag.Bool("gui", false, "Open a window to browse the tasks of the selected split. Requires a display.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	fyneui.RunMain(mainContinue)
}

func mainContinue() {
	split, err := datasets.ParseSplit(*flagSplit)
	if err != nil {
		klog.Errorf("Invalid -split value %q: must be training, evaluation or test.", *flagSplit)
		os.Exit(1)
	}

	ds := datasets.New(*flagData)
	if *flagDownloadURL != "" {
		err = ds.DownloadAndLoad(*flagDownloadURL)
	} else {
		for _, s := range neededSplits(split) {
			err = loadSplit(ds, s)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		klog.Errorf("Failed to load the dataset from %q: %+v", *flagData, err)
		os.Exit(1)
	}

	err = report(ds, split)
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
}

// neededSplits returns the splits the selected reports require, the selected
// one first.
func neededSplits(split datasets.Split) []datasets.Split {
	needed := []datasets.Split{split}
	if *flagFindShape != "" {
		// The shape search defaults to training plus evaluation.
		for _, s := range []datasets.Split{datasets.Training, datasets.Evaluation} {
			if s != split {
				needed = append(needed, s)
			}
		}
	}
	return needed
}

// loadSplit loads one split from its standard file names under -data.
func loadSplit(ds *datasets.Dataset, split datasets.Split) error {
	challengesFile, solutionsFile := split.Files()
	solutionsPath := ""
	if solutionsFile != "" {
		solutionsPath = path.Join(*flagData, solutionsFile)
	}
	return ds.LoadSplit(split, path.Join(*flagData, challengesFile), solutionsPath)
}

// showN converts the -outliers / -shapes flag convention (-1 for all) to the
// formatters' (0 for all).
func showN(flagValue int) int {
	if flagValue < 0 {
		return 0
	}
	return flagValue
}

func parseShape(s string) (grids.Shape, error) {
	heightStr, widthStr, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return grids.Shape{}, errors.Errorf("a shape must look like \"3x4\", got %q", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(heightStr))
	if err != nil {
		return grids.Shape{}, errors.Errorf("invalid height in shape %q: %v", s, err)
	}
	width, err := strconv.Atoi(strings.TrimSpace(widthStr))
	if err != nil {
		return grids.Shape{}, errors.Errorf("invalid width in shape %q: %v", s, err)
	}
	if height <= 0 || width <= 0 {
		return grids.Shape{}, errors.Errorf("shape dimensions must be positive, got %q", s)
	}
	return grids.Shape{Height: height, Width: width}, nil
}

// needsRecords reports whether any selected report works on the per-grid
// records of the split.
func needsRecords() bool {
	return *flagDetails || *flagCategories || *flagOutliers != 0 || *flagShapes != 0 ||
		*flagCSV != "" || *flagPlotHTML != "" || *flagPlotPNG != ""
}

// browseCellSize is the pixel size of one grid cell in the GUI browser.
const browseCellSize = 12

func report(ds *datasets.Dataset, split datasets.Split) error {
	anyReport := needsRecords() || *flagTask != "" || *flagShow != "" ||
		*flagColorCount != 0 || *flagShapePreserving || *flagFindShape != "" || *flagGUI
	if *flagSummary || !anyReport {
		stats, err := ds.SplitStats(split)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Summary of the %s split", split)))
		fmt.Println(commandline.FormatSplitStats(stats))
	}

	if *flagTask != "" {
		task, err := ds.Get(split, *flagTask)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Task %s", task.ID())))
		fmt.Println(commandline.FormatTaskStats(task.Stats()))
	}

	if *flagShow != "" {
		task, err := ds.Get(split, *flagShow)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Task %s", task.ID())))
		fmt.Println(commandline.FormatTask(task))
	}

	var records []analysis.GridRecord
	if needsRecords() {
		records = must.M1(analysis.Collect(ds, split))
	}

	if *flagDetails {
		details, err := analysis.Detail(records)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Grid dimensions of the %s split", split)))
		fmt.Println(commandline.FormatDetailedStats(details))
	}

	if *flagCategories {
		counts, err := analysis.CountByCategory(records)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Size bands of the %s split", split)))
		fmt.Println(commandline.FormatCategories(counts))
	}

	if *flagOutliers != 0 {
		outliers, err := analysis.SizeOutliers(records)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Size outliers of the %s split", split)))
		fmt.Println(commandline.FormatOutliers(outliers, showN(*flagOutliers)))
	}

	if *flagShapes != 0 {
		frequencies, err := analysis.ShapeFrequencies(records)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Most frequent shapes of the %s split", split)))
		fmt.Println(commandline.FormatShapeFrequencies(frequencies, showN(*flagShapes)))
	}

	if *flagColorCount != 0 {
		ids, err := analysis.FindTasksByColorCount(ds, split, *flagColorCount)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Tasks of the %s split using exactly %d colors: %d found",
			split, *flagColorCount, len(ids))))
		if len(ids) > 0 {
			fmt.Println(strings.Join(ids, "\n"))
		}
	}

	if *flagShapePreserving {
		ids, err := analysis.FindShapePreservingTasks(ds, split)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Shape-preserving tasks of the %s split: %d found",
			split, len(ids))))
		if len(ids) > 0 {
			fmt.Println(strings.Join(ids, "\n"))
		}
	}

	if *flagFindShape != "" {
		shape, err := parseShape(*flagFindShape)
		if err != nil {
			return err
		}
		matches, err := analysis.FindGridsByShape(ds, shape)
		if err != nil {
			return err
		}
		fmt.Println(commandline.Title(fmt.Sprintf("Grids of shape %s: %d found", shape, len(matches))))
		fmt.Println(commandline.FormatGridMatches(matches))
	}

	if *flagCSV != "" {
		err := writeRecordsCSV(records, *flagCSV)
		if err != nil {
			return err
		}
		fmt.Printf("Per-grid records written to:\t%s\n", *flagCSV)
	}

	if *flagPlotHTML != "" {
		err := writeSizeDistributionHTML(records, *flagPlotHTML)
		if err != nil {
			return err
		}
		fmt.Printf("Size distribution plot written to:\t%s\n", *flagPlotHTML)
	}

	if *flagPlotPNG != "" {
		err := writeCategoriesPNG(records, *flagPlotPNG)
		if err != nil {
			return err
		}
		fmt.Printf("Size bands chart written to:\t%s\n", *flagPlotPNG)
	}

	if *flagGUI {
		if !fyneui.HasWindows() {
			return errors.New("cannot open the task browser: no graphical display available (DISPLAY is not set)")
		}
		_, err := fyneui.Browse(ds, split, browseCellSize)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeRecordsCSV(records []analysis.GridRecord, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "failed to create CSV file %q", fileName)
	}
	err = analysis.WriteCSV(records, f)
	if err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close CSV file %q", fileName)
}
