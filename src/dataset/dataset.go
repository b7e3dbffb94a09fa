// Package dataset generates and persists the synthetic monthly passengers
// dataset. One Record per calendar month, contiguous over the configured
// year range; the CSV on disk is the only persisted state.
package dataset

import (
	"strings"
	"time"
)

// DefaultDataFile is where the synthesized CSV lives relative to the working dir.
const DefaultDataFile = "data/flights.csv"

// Record is one monthly observation.
type Record struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	Passengers float64    `json:"passengers"`
}

// Date returns the first day of the record's month (UTC), used as the
// time axis for charting.
func (r Record) Date() time.Time {
	return time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonth accepts either a numeric month ("1".."12") or an English month
// name ("January", "jan"). Earlier dataset revisions wrote month names, so
// the loader keeps accepting them.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n := atoiSafe(s); n >= 1 && n <= 12 {
		return time.Month(n), true
	}
	ls := strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if ls == name || (len(ls) == 3 && ls == name[:3]) {
			return m, true
		}
	}
	return 0, false
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	if len(s) == 0 {
		return -1
	}
	return n
}

// Values extracts the passengers column.
func Values(recs []Record) []float64 {
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = r.Passengers
	}
	return out
}
