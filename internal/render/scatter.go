// Package render draws dashboard charts as static images for clients that
// cannot run the interactive plotting library.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default image size for ScatterPNG.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// ErrNoPoints is returned when a chart has nothing to draw.
var ErrNoPoints = errors.New("chart has no points")

var (
	markerColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	trendlineColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// ScatterPNG writes chart as a PNG of the given size: one labelled marker per
// state and, unless omitted, the fitted trendline.
func ScatterPNG(w io.Writer, chart domain.ScatterChart, width, height vg.Length) error {
	if len(chart.Points) == 0 {
		return ErrNoPoints
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = chart.XTitle
	p.Y.Label.Text = chart.YTitle
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(chart.Points))
	labels := make([]string, len(chart.Points))
	for i, pt := range chart.Points {
		points[i].X, points[i].Y = pt.X, pt.Y
		labels[i] = pt.Label
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyle.Color = markerColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	labelPoints, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	for i := range labelPoints.TextStyle {
		labelPoints.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(labelPoints)

	if !chart.TrendlineOmitted && len(chart.Trendline) > 1 {
		trend := make(plotter.XYs, len(chart.Trendline))
		for i, pt := range chart.Trendline {
			trend[i].X, trend[i].Y = pt.X, pt.Y
		}
		line, err := plotter.NewLine(trend)
		if err != nil {
			return fmt.Errorf("trendline: %w", err)
		}
		line.Color = trendlineColor
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("Trendline", line)
		p.Legend.Top = true
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
