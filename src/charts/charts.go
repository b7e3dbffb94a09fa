// Package charts renders the four standard dataset charts (line, bar,
// histogram, scatter) as images, and can write the whole set to PNG files
// headlessly.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Options controls chart geometry and extras shared by all renderers.
type Options struct {
	Width  int
	Height int
	// RollingWindow adds a rolling-mean overlay to the line chart when > 1.
	RollingWindow int
	// Bins is the histogram bin count.
	Bins int
	// Hints draws a one-line reading hint at the bottom of each chart.
	Hints bool
}

// DefaultOptions sizes charts for comfortable axis labels.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 420, RollingWindow: 12, Bins: 20}
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 1000
	}
	if h <= 0 {
		h = 420
	}
	return w, h
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// renderable is satisfied by both chart.Chart and chart.BarChart.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// render draws a chart to PNG and decodes it back into an image, the form
// both the viewer and the file writer consume.
func render(ch renderable) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart png: %w", err)
	}
	return img, nil
}

// yRangeFromZero builds a 0..max axis range with headroom. go-chart aborts
// on a zero-delta value range, which single-bar and constant-valued inputs
// produce; anchoring at zero with a padded max keeps those renderable.
func yRangeFromZero(max float64) *chart.ContinuousRange {
	if max <= 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max * 1.05}
}

// blank returns a dark placeholder image used when a chart cannot render.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
