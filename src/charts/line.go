package charts

import (
	"fmt"
	"image"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/scylla8434/flightstats/src/dataset"
)

// Line renders the monthly passengers time series, with an optional
// rolling-mean overlay smoothing out the seasonal cycle.
func Line(recs []dataset.Record, opts Options) (image.Image, error) {
	w, h := opts.size()
	if len(recs) < 2 {
		return blank(w, h), nil
	}
	times := make([]time.Time, len(recs))
	ys := make([]float64, len(recs))
	minY, maxY := recs[0].Passengers, recs[0].Passengers
	for i, r := range recs {
		times[i] = r.Date()
		ys[i] = r.Passengers
		if r.Passengers < minY {
			minY = r.Passengers
		}
		if r.Passengers > maxY {
			maxY = r.Passengers
		}
	}
	// A constant-valued column would hand go-chart a zero-delta y-range.
	var yRange chart.Range
	if maxY == minY {
		yRange = yRangeFromZero(maxY)
	}
	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Passengers",
			XValues: times,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1, StrokeColor: chart.ColorBlue},
		},
	}
	if win := opts.RollingWindow; win > 1 && win <= len(ys) {
		rollTimes, rollYs := rollingMean(times, ys, win)
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("Rolling mean (%dmo)", win),
			XValues: rollTimes,
			YValues: rollYs,
			Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorRed},
		})
	}
	ch := chart.Chart{
		Title:      fmt.Sprintf("Monthly Passengers (%d-%d)", recs[0].Year, recs[len(recs)-1].Year),
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis:  chart.YAxis{Name: "Passengers", Range: yRange},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	img, err := render(ch)
	if err != nil {
		return nil, err
	}
	if opts.Hints {
		img = drawHint(img, "Hint: the upward slope is the long-term trend; the wiggle is the seasonal cycle.")
	}
	return img, nil
}

// rollingMean returns the trailing mean over window points, aligned to the
// window's last timestamp.
func rollingMean(times []time.Time, ys []float64, window int) ([]time.Time, []float64) {
	n := len(ys) - window + 1
	outT := make([]time.Time, n)
	outY := make([]float64, n)
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += ys[i]
	}
	outT[0] = times[window-1]
	outY[0] = sum / float64(window)
	for i := window; i < len(ys); i++ {
		sum += ys[i] - ys[i-window]
		outT[i-window+1] = times[i]
		outY[i-window+1] = sum / float64(window)
	}
	return outT, outY
}
