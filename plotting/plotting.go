// Package plotting renders patterns as static images (gonum/plot) and as
// interactive HTML line charts (go-echarts).
package plotting

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-pattern/pattern"
)

// ErrNoSeries indicates a render call without data.
var ErrNoSeries = errors.New("plotting: nothing to plot")

// Image size used by SavePlot.
const (
	Width  = 8 * vg.Inch
	Height = 4 * vg.Inch
)

// Series is one named x/y curve.
type Series struct {
	Name string
	X, Y []float64
}

// FromPattern returns the derived view of p as a series named after p.
func FromPattern(p *pattern.Pattern) (Series, error) {
	x, y, err := p.Data()
	if err != nil {
		return Series{}, err
	}
	return Series{Name: p.Name(), X: x, Y: y}, nil
}

func (s Series) points() plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}
	return pts
}

func validate(series []Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("plotting: series %q: %d x values, %d y values", s.Name, len(s.X), len(s.Y))
		}
	}
	return nil
}

// SavePlot draws the series as lines and writes the image to path. The
// format follows the extension (.png, .svg, .pdf, ...).
func SavePlot(path, title, xLabel string, series ...Series) error {
	if err := validate(series); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Intensity"

	for i, s := range series {
		if len(s.X) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.points())
		if err != nil {
			return fmt.Errorf("plotting: series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}
	p.Legend.Top = true

	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}

// RenderHTML writes a self-contained interactive line chart of the series.
func RenderHTML(w io.Writer, title, xLabel string, series ...Series) error {
	if err := validate(series); err != nil {
		return err
	}

	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: xLabel, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Intensity"}),
	)

	for _, s := range series {
		data := make([]opts.LineData, len(s.X))
		for i := range s.X {
			data[i] = opts.LineData{Value: []interface{}{s.X[i], s.Y[i]}}
		}
		chart.AddSeries(s.Name, data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	}

	if err := chart.Render(w); err != nil {
		return fmt.Errorf("plotting: render: %w", err)
	}
	return nil
}
