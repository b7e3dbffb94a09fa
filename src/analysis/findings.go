package analysis

import "fmt"

// Findings assembles human-readable observations from the computed
// summaries. Statements are derived from the data, not hard-coded: trend
// direction comes from the first-vs-last yearly delta, variability from the
// spread of per-year standard deviations.
func Findings(desc Descriptive, years []YearSummary) []string {
	var out []string
	if delta, first, last := CompareFirstVsLast(years); len(years) >= 2 {
		direction := "increase"
		if delta < 0 {
			direction = "decrease"
		}
		out = append(out, fmt.Sprintf(
			"Trend: average monthly passengers %s %.1f%% from %d (%.0f) to %d (%.0f).",
			direction, abs(delta), years[0].Year, first, years[len(years)-1].Year, last))
	}
	if len(years) > 0 {
		minStd, maxStd := years[0].StdDev, years[0].StdDev
		for _, y := range years[1:] {
			if y.StdDev < minStd {
				minStd = y.StdDev
			}
			if y.StdDev > maxStd {
				maxStd = y.StdDev
			}
		}
		out = append(out, fmt.Sprintf(
			"Seasonality: per-year std dev stays in the %.0f-%.0f range, consistent with a recurring intra-year cycle.",
			minStd, maxStd))
	}
	if desc.Count > 0 && desc.Mean > 0 {
		out = append(out, fmt.Sprintf(
			"Variability: monthly counts spread %.0f-%.0f around a mean of %.0f (std %.0f).",
			desc.Min, desc.Max, desc.Mean, desc.Std))
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
