package charts

import (
	"fmt"
	"image"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// histBin is one histogram bucket over [Low, High).
type histBin struct {
	Low, High float64
	Count     int
}

// binValues buckets xs into n equal-width bins spanning [min, max]. The top
// edge is inclusive so the maximum lands in the last bin.
func binValues(xs []float64, n int) []histBin {
	if len(xs) == 0 || n <= 0 {
		return nil
	}
	min, max := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return []histBin{{Low: min, High: max, Count: len(xs)}}
	}
	width := (max - min) / float64(n)
	bins := make([]histBin, n)
	for i := range bins {
		bins[i].Low = min + float64(i)*width
		bins[i].High = bins[i].Low + width
	}
	for _, v := range xs {
		idx := int(math.Floor((v - min) / width))
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Count++
	}
	return bins
}

// Histogram renders the distribution of monthly passenger counts.
func Histogram(xs []float64, opts Options) (image.Image, error) {
	w, h := opts.size()
	n := opts.Bins
	if n <= 0 {
		n = 20
	}
	bins := binValues(xs, n)
	if len(bins) == 0 {
		return blank(w, h), nil
	}
	bars := make([]chart.Value, 0, len(bins))
	maxCount := 0
	for i, b := range bins {
		label := ""
		if i%2 == 0 {
			label = fmt.Sprintf("%.0f", b.Low)
		}
		if b.Count > maxCount {
			maxCount = b.Count
		}
		bars = append(bars, chart.Value{Value: float64(b.Count), Label: label})
	}
	barWidth := (w - 120) / len(bins)
	if barWidth < 6 {
		barWidth = 6
	}
	if barWidth > 48 {
		barWidth = 48
	}
	ch := chart.BarChart{
		Title:      "Histogram of Monthly Passenger Counts",
		Width:      w,
		Height:     h,
		BarWidth:   barWidth,
		BarSpacing: 2,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 34}},
		// Constant-valued input collapses to one bin (equal counts); anchor
		// the frequency axis at zero so the range never has zero delta.
		YAxis: chart.YAxis{Name: "Frequency", Range: yRangeFromZero(float64(maxCount))},
		Bars:  bars,
	}
	img, err := render(ch)
	if err != nil {
		return nil, err
	}
	if opts.Hints {
		img = drawHint(img, "Hint: a wide, flat-ish spread here comes from trend plus seasonal swings, not noise alone.")
	}
	return img, nil
}
