// Package plot renders the exploratory figures as PNG files.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/davidbz/glass/internal/dataset"
)

const (
	histogramBins = 30
	dpi           = 300
	paletteSize   = 255
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Histogram draws the distribution of a column's present values.
func Histogram(values []float64, column, path string) error {
	present := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return fmt.Errorf("%w: column %q", ErrNoData, column)
	}

	p := plot.New()
	p.Title.Text = "Distribution of " + column
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	hist, err := plotter.NewHist(present, histogramBins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	hist.FillColor = color.RGBA{R: 31, G: 119, B: 180, A: 178}
	hist.LineStyle.Color = color.Black
	p.Add(hist)

	return save(p, 10*vg.Inch, 6*vg.Inch, path)
}

// CorrelationHeatmap draws an annotated correlation matrix. The first
// variable is drawn on the top row.
func CorrelationHeatmap(m *dataset.CorrelationMatrix, path string) error {
	if m == nil || len(m.Names) == 0 {
		return fmt.Errorf("%w: empty correlation matrix", ErrNoData)
	}

	grid := correlationGrid{m: m}

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	heat := plotter.NewHeatMap(grid, colors.Palette(paletteSize))
	heat.Min = -1
	heat.Max = 1
	heat.NaN = color.Gray{Y: 220}

	n := len(m.Names)
	xys := make(plotter.XYs, 0, n*n)
	annotations := make([]string, 0, n*n)
	for r := range n {
		for c := range n {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			annotations = append(annotations, annotate(grid.Z(c, r)))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: annotations})
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}

	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, name := range m.Names {
		xTicks[i] = plot.Tick{Value: float64(i), Label: name}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.Add(heat, labels)

	return save(p, 10*vg.Inch, 8*vg.Inch, path)
}

// correlationGrid adapts a correlation matrix to plotter.GridXYZ.
type correlationGrid struct {
	m *dataset.CorrelationMatrix
}

func (g correlationGrid) Dims() (int, int) {
	return len(g.m.Names), len(g.m.Names)
}

func (g correlationGrid) Z(c, r int) float64 {
	return g.m.Values[len(g.m.Names)-1-r][c]
}

func (g correlationGrid) X(c int) float64 {
	return float64(c)
}

func (g correlationGrid) Y(r int) float64 {
	return float64(r)
}

func annotate(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}

func save(p *plot.Plot, width, height vg.Length, path string) error {
	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create figure file: %w", err)
	}

	if _, err = (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode figure: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}

	return nil
}
