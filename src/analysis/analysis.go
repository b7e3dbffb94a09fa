// Package analysis computes descriptive statistics and per-year summaries
// over the passengers dataset.
package analysis

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/scylla8434/flightstats/src/dataset"
)

// Descriptive mirrors the usual describe() rollup for one numeric column.
type Descriptive struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Describe computes count/mean/std/min/quartiles/max. Std is the sample
// standard deviation (n-1).
func Describe(xs []float64) Descriptive {
	if len(xs) == 0 {
		return Descriptive{}
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()
	return Descriptive{
		Count:  len(xs),
		Mean:   s.Mean(),
		Std:    sampleStd(&s),
		Min:    s.Quantile(0),
		P25:    s.Quantile(0.25),
		Median: s.Quantile(0.5),
		P75:    s.Quantile(0.75),
		Max:    s.Quantile(1),
	}
}

// YearSummary captures aggregate metrics for one calendar year.
type YearSummary struct {
	Year   int     `json:"year"`
	Count  int     `json:"count"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
}

// SummarizeYears groups records by year and aggregates each group. The
// result has exactly one row per distinct year, in ascending year order.
func SummarizeYears(recs []dataset.Record) []YearSummary {
	groups := map[int][]float64{}
	var order []int
	for _, r := range recs {
		if _, ok := groups[r.Year]; !ok {
			order = append(order, r.Year)
		}
		groups[r.Year] = append(groups[r.Year], r.Passengers)
	}
	sort.Ints(order)
	summaries := make([]YearSummary, 0, len(order))
	for _, year := range order {
		xs := groups[year]
		s := stats.Sample{Xs: xs}
		s.Sort()
		summaries = append(summaries, YearSummary{
			Year:   year,
			Count:  len(xs),
			Avg:    s.Mean(),
			Median: s.Quantile(0.5),
			StdDev: sampleStd(&s),
			Min:    s.Quantile(0),
			Max:    s.Quantile(1),
		})
	}
	return summaries
}

// sampleStd is the n-1 standard deviation, zero for samples too small to
// estimate spread (a lone record would otherwise yield NaN).
func sampleStd(s *stats.Sample) float64 {
	if len(s.Xs) < 2 {
		return 0
	}
	return s.StdDev()
}

// CompareFirstVsLast returns the percent change of the yearly average between
// the first and last summarized year, plus both averages.
func CompareFirstVsLast(summaries []YearSummary) (deltaPct, firstAvg, lastAvg float64) {
	if len(summaries) < 2 {
		return 0, 0, 0
	}
	firstAvg = summaries[0].Avg
	lastAvg = summaries[len(summaries)-1].Avg
	if firstAvg > 0 {
		deltaPct = (lastAvg - firstAvg) / firstAvg * 100
	}
	if math.IsNaN(deltaPct) {
		deltaPct = 0
	}
	return deltaPct, firstAvg, lastAvg
}
