package charts

import (
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/scylla8434/flightstats/src/dataset"
)

// Scatter renders year (offset by month fraction so the twelve points per
// year do not stack on one x position) against monthly passengers, dots only.
func Scatter(recs []dataset.Record, opts Options) (image.Image, error) {
	w, h := opts.size()
	// go-chart needs at least two series values; a single row gets the placeholder.
	if len(recs) < 2 {
		return blank(w, h), nil
	}
	xs := make([]float64, len(recs))
	ys := make([]float64, len(recs))
	for i, r := range recs {
		xs[i] = float64(r.Year) + float64(r.Month-1)/12.0
		ys[i] = r.Passengers
	}
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < len(recs); i++ {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}
	// Duplicate months or constant counts leave a zero-delta axis range,
	// which go-chart rejects; pad those explicitly. Left nil (untyped) the
	// axis falls back to go-chart's own range detection.
	var xRange, yRange chart.Range
	if maxX == minX {
		xRange = &chart.ContinuousRange{Min: minX - 0.5, Max: maxX + 0.5}
	}
	if maxY == minY {
		yRange = yRangeFromZero(maxY)
	}
	ch := chart.Chart{
		Title:      "Year vs. Monthly Passengers",
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  "Year",
			Range: xRange,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{Name: "Passengers", Range: yRange},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Monthly count",
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(chart.ColorBlue),
			},
		},
	}
	img, err := render(ch)
	if err != nil {
		return nil, err
	}
	if opts.Hints {
		img = drawHint(img, "Hint: vertical spread within each year is the seasonal + noise component around the trend.")
	}
	return img, nil
}
