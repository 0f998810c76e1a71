package pipeline

import (
	"fmt"
	"image/color"
	"path/filepath"

	"korpus/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	barBlue   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	barRed    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	lineGreen = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// ChartRenderer draws the analysis charts as PNG files
type ChartRenderer struct {
	dir string
}

// NewChartRenderer creates a chart renderer writing into dir
func NewChartRenderer(dir string) *ChartRenderer {
	return &ChartRenderer{dir: dir}
}

func (c *ChartRenderer) save(p *plot.Plot, name string) error {
	if err := p.Save(10*vg.Inch, 6*vg.Inch, filepath.Join(c.dir, name)); err != nil {
		return fmt.Errorf("save chart %s: %w", name, err)
	}
	return nil
}

// Bar draws a labeled bar chart from frequency entries
func (c *ChartRenderer) Bar(name, title, yLabel string, entries []model.Entry, col color.Color) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
		labels[i] = displayLabel(e.Symbol)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("bar chart %s: %w", name, err)
	}
	bars.Color = col
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)
	return c.save(p, name)
}

// ZipfScatter draws the log-log rank-frequency scatter with the fitted
// regression line and the correlation in the legend
func (c *ChartRenderer) ZipfScatter(name string, logRanks, logFreqs []float64, fit *model.ZipfFit) error {
	p := plot.New()
	p.Title.Text = "Zipf's Law Validation"
	p.X.Label.Text = "log10(rank)"
	p.Y.Label.Text = "log10(frequency)"

	pts := make(plotter.XYs, len(logRanks))
	for i := range logRanks {
		pts[i].X = logRanks[i]
		pts[i].Y = logFreqs[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("zipf scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = barBlue

	x0, x1 := logRanks[0], logRanks[len(logRanks)-1]
	fitLine, err := plotter.NewLine(plotter.XYs{
		{X: x0, Y: fit.Intercept + fit.Slope*x0},
		{X: x1, Y: fit.Intercept + fit.Slope*x1},
	})
	if err != nil {
		return fmt.Errorf("zipf fit line: %w", err)
	}
	fitLine.Color = barRed
	fitLine.Width = vg.Points(1.5)

	p.Add(scatter, fitLine, plotter.NewGrid())
	p.Legend.Add(fmt.Sprintf("fit: slope %.3f, r %.4f", fit.Slope, fit.Correlation), fitLine)
	p.Legend.Top = true
	return c.save(p, name)
}

// Line draws a single-series line chart
func (c *ChartRenderer) Line(name, title, xLabel, yLabel string, xs, ys []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line chart %s: %w", name, err)
	}
	line.Color = lineGreen
	line.Width = vg.Points(1.5)

	p.Add(line, plotter.NewGrid())
	return c.save(p, name)
}

// displayLabel makes whitespace symbols visible on chart axes
func displayLabel(symbol string) string {
	if symbol == " " {
		return "␣"
	}
	return symbol
}
