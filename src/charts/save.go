package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/scylla8434/flightstats/src/analysis"
	"github.com/scylla8434/flightstats/src/dataset"
)

// Filenames of the rendered chart set, in render order.
var Filenames = []string{"line.png", "bar_avg_by_year.png", "histogram.png", "scatter.png"}

// WriteAll renders the full chart set and writes the PNGs under outDir.
// It runs headlessly without creating a UI window.
func WriteAll(recs []dataset.Record, years []analysis.YearSummary, opts Options, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	xs := dataset.Values(recs)
	toRender := []struct {
		name string
		fn   func() (image.Image, error)
	}{
		{Filenames[0], func() (image.Image, error) { return Line(recs, opts) }},
		{Filenames[1], func() (image.Image, error) { return Bar(years, opts) }},
		{Filenames[2], func() (image.Image, error) { return Histogram(xs, opts) }},
		{Filenames[3], func() (image.Image, error) { return Scatter(recs, opts) }},
	}
	for _, item := range toRender {
		img, err := item.fn()
		if err != nil {
			return fmt.Errorf("render %s: %w", item.name, err)
		}
		if img == nil {
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}
