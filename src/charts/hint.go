package charts

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawHint stamps a one-line reading hint into the bottom-left corner of a
// rendered chart. The hint sits on a translucent dark strip so it stays
// legible over axis labels and gridlines.
func drawHint(src image.Image, text string) image.Image {
	text = strings.TrimSpace(text)
	if src == nil || text == "" {
		return src
	}
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	face := basicfont.Face7x13
	width := (&font.Drawer{Face: face}).MeasureString(text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	const margin, pad = 8, 6
	baseX := bounds.Min.X + margin
	baseY := bounds.Max.Y - margin + 2

	strip := image.Rect(baseX-pad, baseY-ascent-pad, baseX+width+pad, baseY+pad/2)
	draw.Draw(out, strip, image.NewUniform(color.RGBA{A: 200}), image.Point{}, draw.Over)

	// one-pixel shadow pass first so the white pass lands on top
	passes := []struct {
		dx, dy int
		col    color.RGBA
	}{
		{1, 1, color.RGBA{A: 180}},
		{0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, p := range passes {
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(p.col),
			Face: face,
			Dot:  fixed.P(baseX+p.dx, baseY+p.dy),
		}
		d.DrawString(text)
	}
	return out
}
