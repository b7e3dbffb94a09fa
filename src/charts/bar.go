package charts

import (
	"fmt"
	"image"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/scylla8434/flightstats/src/analysis"
)

// Bar renders average passengers per year as a bar chart, one bar per
// summarized year. With many years only every other bar is labeled so the
// axis stays readable.
func Bar(years []analysis.YearSummary, opts Options) (image.Image, error) {
	w, h := opts.size()
	if len(years) == 0 {
		return blank(w, h), nil
	}
	labelEvery := 1
	if len(years) > 20 {
		labelEvery = 2
	}
	bars := make([]chart.Value, 0, len(years))
	maxAvg := 0.0
	for i, y := range years {
		label := ""
		if i%labelEvery == 0 {
			label = strconv.Itoa(y.Year)
		}
		if y.Avg > maxAvg {
			maxAvg = y.Avg
		}
		bars = append(bars, chart.Value{Value: y.Avg, Label: label})
	}
	barWidth := (w - 120) / len(years)
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 40 {
		barWidth = 40
	}
	ch := chart.BarChart{
		Title:      fmt.Sprintf("Average Monthly Passengers by Year (%d-%d)", years[0].Year, years[len(years)-1].Year),
		Width:      w,
		Height:     h,
		BarWidth:   barWidth,
		BarSpacing: 4,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 34}},
		// Explicit baseline-at-zero range: go-chart rejects the zero-delta
		// range a single year or equal averages would otherwise produce.
		YAxis: chart.YAxis{Name: "Average Passengers", Range: yRangeFromZero(maxAvg)},
		Bars:  bars,
	}
	img, err := render(ch)
	if err != nil {
		return nil, err
	}
	if opts.Hints {
		img = drawHint(img, "Hint: near-linear growth of the yearly average reflects the trend component.")
	}
	return img, nil
}
