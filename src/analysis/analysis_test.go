package analysis

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/scylla8434/flightstats/src/dataset"
)

// helper to build a flat year of monthly records
func yearOf(year int, base float64, step float64) []dataset.Record {
	recs := make([]dataset.Record, 0, 12)
	for m := time.January; m <= time.December; m++ {
		recs = append(recs, dataset.Record{Year: year, Month: m, Passengers: base + step*float64(m-1)})
	}
	return recs
}

func almostEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestDescribeKnownValues(t *testing.T) {
	d := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if d.Count != 8 {
		t.Fatalf("count=%d", d.Count)
	}
	if !almostEqual(d.Mean, 5, 1e-9) {
		t.Fatalf("mean=%v", d.Mean)
	}
	// sample std dev of this classic set is sqrt(32/7)
	if want := math.Sqrt(32.0 / 7.0); !almostEqual(d.Std, want, 1e-9) {
		t.Fatalf("std=%v want %v", d.Std, want)
	}
	if d.Min != 2 || d.Max != 9 {
		t.Fatalf("min/max=%v/%v", d.Min, d.Max)
	}
	if d.Median < 4 || d.Median > 5 {
		t.Fatalf("median out of range: %v", d.Median)
	}
	if d.P25 > d.Median || d.Median > d.P75 {
		t.Fatalf("quartiles out of order: %v %v %v", d.P25, d.Median, d.P75)
	}
}

func TestDescribeEmpty(t *testing.T) {
	if d := Describe(nil); d.Count != 0 || d.Mean != 0 {
		t.Fatalf("empty describe should be zero: %+v", d)
	}
}

func TestSummarizeYears(t *testing.T) {
	var recs []dataset.Record
	recs = append(recs, yearOf(2001, 100, 0)...)
	recs = append(recs, yearOf(2000, 200, 0)...)
	recs = append(recs, yearOf(2002, 300, 0)...)
	sums := SummarizeYears(recs)
	if len(sums) != 3 {
		t.Fatalf("expected one summary per distinct year, got %d", len(sums))
	}
	if sums[0].Year != 2000 || sums[1].Year != 2001 || sums[2].Year != 2002 {
		t.Fatalf("years not ascending: %+v", sums)
	}
	for _, s := range sums {
		if s.Count != 12 {
			t.Fatalf("year %d count=%d", s.Year, s.Count)
		}
	}
	if !almostEqual(sums[0].Avg, 200, 1e-9) || !almostEqual(sums[1].Avg, 100, 1e-9) {
		t.Fatalf("group averages wrong: %+v", sums)
	}
	if sums[0].StdDev != 0 {
		t.Fatalf("flat year should have zero std dev, got %v", sums[0].StdDev)
	}
}

func TestSingleObservationStdDevIsZero(t *testing.T) {
	// the n-1 estimator is undefined for one value; report 0, never NaN
	if d := Describe([]float64{7}); d.Std != 0 || d.Count != 1 {
		t.Fatalf("single-value describe: %+v", d)
	}
	recs := []dataset.Record{
		{Year: 2024, Month: time.December, Passengers: 310},
	}
	recs = append(recs, yearOf(2025, 100, 5)...)
	sums := SummarizeYears(recs)
	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	if sums[0].Count != 1 {
		t.Fatalf("partial year count=%d", sums[0].Count)
	}
	if math.IsNaN(sums[0].StdDev) || sums[0].StdDev != 0 {
		t.Fatalf("single-record year std dev should be 0, got %v", sums[0].StdDev)
	}
	if sums[1].StdDev <= 0 {
		t.Fatalf("full year should have positive std dev, got %v", sums[1].StdDev)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	cfg := dataset.DefaultConfig()
	recs, err := dataset.Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	a := SummarizeYears(recs)
	b := SummarizeYears(recs)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("summaries not deterministic at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCompareFirstVsLast(t *testing.T) {
	var recs []dataset.Record
	recs = append(recs, yearOf(2000, 100, 0)...)
	recs = append(recs, yearOf(2001, 150, 0)...)
	sums := SummarizeYears(recs)
	delta, first, last := CompareFirstVsLast(sums)
	if !almostEqual(first, 100, 1e-9) || !almostEqual(last, 150, 1e-9) {
		t.Fatalf("first/last %v/%v", first, last)
	}
	if !almostEqual(delta, 50, 1e-9) {
		t.Fatalf("delta=%v want 50", delta)
	}
	if d, _, _ := CompareFirstVsLast(sums[:1]); d != 0 {
		t.Fatalf("single year should yield zero delta, got %v", d)
	}
}

func TestFindingsReflectTrend(t *testing.T) {
	var recs []dataset.Record
	recs = append(recs, yearOf(2000, 100, 5)...)
	recs = append(recs, yearOf(2001, 200, 5)...)
	sums := SummarizeYears(recs)
	desc := Describe(dataset.Values(recs))
	found := Findings(desc, sums)
	if len(found) == 0 {
		t.Fatalf("expected findings")
	}
	joined := strings.Join(found, "\n")
	if !strings.Contains(joined, "increase") {
		t.Fatalf("expected an increase observation in findings: %v", found)
	}
	if !strings.Contains(joined, "Seasonality") {
		t.Fatalf("expected a seasonality observation in findings: %v", found)
	}
}
