package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Config controls synthetic generation: a linear upward trend plus a yearly
// seasonal sine (peaking mid-year) plus gaussian noise, clamped at zero.
type Config struct {
	StartYear int
	EndYear   int

	Base              float64
	TrendPerMonth     float64
	SeasonalAmplitude float64
	NoiseStd          float64

	// Seed makes regeneration reproducible. Same seed + same range -> same file.
	Seed int64
}

// DefaultConfig matches the published dataset constants for 2000-2025.
func DefaultConfig() Config {
	return Config{
		StartYear:         2000,
		EndYear:           2025,
		Base:              200,
		TrendPerMonth:     2.5,
		SeasonalAmplitude: 80,
		NoiseStd:          20,
		Seed:              42,
	}
}

// Months returns how many monthly records the configured range spans.
func (c Config) Months() int {
	if c.EndYear < c.StartYear {
		return 0
	}
	return (c.EndYear - c.StartYear + 1) * 12
}

// Validate rejects ranges the generator cannot produce.
func (c Config) Validate() error {
	if c.EndYear < c.StartYear {
		return fmt.Errorf("invalid year range: %d..%d", c.StartYear, c.EndYear)
	}
	if c.NoiseStd < 0 {
		return fmt.Errorf("noise std must be >= 0, got %g", c.NoiseStd)
	}
	return nil
}

// Generate produces one record per month over [StartYear, EndYear],
// contiguous and in chronological order. Counts are rounded to whole
// passengers and never negative.
func Generate(cfg Config) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	recs := make([]Record, 0, cfg.Months())
	idx := 0
	for year := cfg.StartYear; year <= cfg.EndYear; year++ {
		for m := time.January; m <= time.December; m++ {
			trend := cfg.Base + cfg.TrendPerMonth*float64(idx)
			seasonal := cfg.SeasonalAmplitude * math.Sin(2*math.Pi*float64(m-1)/12)
			noise := rng.NormFloat64() * cfg.NoiseStd
			v := math.Round(trend + seasonal + noise)
			if v < 0 {
				v = 0
			}
			recs = append(recs, Record{Year: year, Month: m, Passengers: v})
			idx++
		}
	}
	return recs, nil
}
