package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"html/template"
	"io"
	"os"

	grob "github.com/MetalBlueberry/go-plotly/generated/v2.34.0/graph_objects"
	ptypes "github.com/MetalBlueberry/go-plotly/pkg/types"
	"github.com/janpfeifer/gonb/gonbui/plotly"
	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/analysis"
	"github.com/arcscope/arcscope/types/xslices"
)

var flagPlotHTML = flag.String("plot_html", "",
	"Write an interactive plot of the split's grid-size distribution to this HTML file. "+
		"The file is self-contained except for the Plotly JavaScript, loaded from its CDN.")

// sizeDistributionFig builds the grid-size distribution of the records as a
// Plotly figure: one point per observed size, counting the grids of that
// size.
func sizeDistributionFig(records []analysis.GridRecord) *grob.Fig {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Size]++
	}
	sizes := xslices.SortedKeys(counts)
	steps := xslices.Map(sizes, func(size int) float64 { return float64(size) })
	values := xslices.Map(sizes, func(size int) float64 { return float64(counts[size]) })

	fig := &grob.Fig{
		Layout: &grob.Layout{
			Title: &grob.LayoutTitle{
				Text: ptypes.S("Grid size distribution"),
			},
			Xaxis: &grob.LayoutXaxis{
				Showgrid: ptypes.B(true),
			},
			Yaxis: &grob.LayoutYaxis{
				Showgrid: ptypes.B(true),
			},
		},
	}
	fig.Data = append(fig.Data, &grob.Scatter{
		Name: ptypes.S("# grids"),
		Line: &grob.ScatterLine{
			Shape: grob.ScatterLineShapeLinear,
		},
		Mode: "lines+markers",
		X:    ptypes.DataArray(steps),
		Y:    ptypes.DataArray(values),
	})
	return fig
}

func writeSizeDistributionHTML(records []analysis.GridRecord, fileName string) error {
	if len(records) == 0 {
		return errors.Wrap(analysis.ErrEmptyDataset, "nothing to plot")
	}
	figAsJSON, err := json.Marshal(sizeDistributionFig(records))
	if err != nil {
		return errors.Wrap(err, "failed to marshal the plotly figure")
	}
	return plotlyToHTMLFile(fileName, figAsJSON)
}

var (
	singleFileHTML = `<!DOCTYPE html>
	<head>
		<meta charset="utf-8">
		<script src="{{ .CDN }}"></script>
	</head>
	<body style="background-color: black;">
{{- range $i, $f := .Figures }}
		<div id="plot{{ $i }}"></div>
		{{ if not (eq $i (lastIdx $.Figures)) }}
		<hr style="border-color: gray;">
		{{ end }}
{{- end }}
	<script>
{{- range $i, $f := .Figures }}
		data = JSON.parse(atob('{{ $f }}'))
		Plotly.newPlot('plot{{ $i }}', data);
{{- end }}
	</script>
	</body>
</html>`
	singleFileHTMLTmpl = template.Must(template.New("plotly").Funcs(template.FuncMap{
		"lastIdx": func(a []string) int { return len(a) - 1 },
	}).Parse(singleFileHTML))
)

// writePlotlyAsHTML renders the Plotly figures (given as JSON) to an HTML
// page that can be served or saved to a file.
func writePlotlyAsHTML(w io.Writer, figuresAsJSON ...[]byte) error {
	data := &struct {
		CDN     string
		Figures []string
	}{
		CDN:     plotly.PlotlySrc,
		Figures: xslices.Map(figuresAsJSON, func(fig []byte) string { return base64.StdEncoding.EncodeToString(fig) }),
	}
	err := singleFileHTMLTmpl.Execute(w, data)
	if err != nil {
		return errors.Wrap(err, "failed to render plotly")
	}
	return nil
}

// plotlyToHTMLFile renders the Plotly figures (given as JSON) to an HTML file.
func plotlyToHTMLFile(fileName string, figuresAsJSON ...[]byte) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %q", fileName)
	}
	defer func() { _ = f.Close() }()
	return writePlotlyAsHTML(f, figuresAsJSON...)
}
