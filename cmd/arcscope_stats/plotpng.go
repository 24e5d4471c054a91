package main

import (
	"flag"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arcscope/arcscope/analysis"
)

var flagPlotPNG = flag.String("plot_png", "",
	"Write a bar chart of the split's grid counts per size band to this PNG file.")

func writeCategoriesPNG(records []analysis.GridRecord, fileName string) error {
	counts, err := analysis.CountByCategory(records)
	if err != nil {
		return err
	}

	categories := analysis.SizeCategories()
	values := make(plotter.Values, 0, len(categories))
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		values = append(values, float64(counts[category]))
		names = append(names, category.String())
	}

	p := plot.New()
	p.Title.Text = "Grid size bands"
	p.Y.Label.Text = "# grids"
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return errors.Wrap(err, "failed to build the size-band bar chart")
	}
	p.Add(bars)
	p.NominalX(names...)
	if err := p.Save(8*vg.Inch, 4*vg.Inch, fileName); err != nil {
		return errors.Wrapf(err, "failed to save the size-band chart to %q", fileName)
	}
	return nil
}
