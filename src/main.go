// flightstats main entrypoint.
//
// One linear pipeline:
//  1. Ensure data/flights.csv exists (synthesize it when absent; an existing
//     file is never overwritten or regenerated).
//  2. Load and explore it (head rows, shape, column types, missing values).
//  3. Compute descriptive statistics and the per-year summary.
//  4. Render the four charts (line, bar, histogram, scatter) as PNGs.
//  5. Print findings derived from the computed summaries.
//
// Design notes:
// - Dependency direction: main -> analysis/explore/charts for reporting;
//   dataset for synthesis and persistence only.
// - A custom CSV can be pointed at with -data; it just has to carry
//   year/month/passengers columns (month names or numbers both load).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/scylla8434/flightstats/src/analysis"
	"github.com/scylla8434/flightstats/src/charts"
	"github.com/scylla8434/flightstats/src/dataset"
	"github.com/scylla8434/flightstats/src/explore"
)

func main() {
	dataPath := flag.String("data", dataset.DefaultDataFile, "Path to the passengers CSV (generated when absent)")
	outDir := flag.String("out", "charts", "Directory for rendered chart PNGs")
	startYear := flag.Int("start-year", 2000, "First year of the generated range")
	endYear := flag.Int("end-year", 2025, "Last year of the generated range (inclusive)")
	seed := flag.Int64("seed", 42, "RNG seed for synthesis (fixed by default so regeneration is reproducible)")
	headN := flag.Int("head", 5, "Number of leading rows to print while exploring")
	bins := flag.Int("bins", 20, "Histogram bin count")
	rollingWindow := flag.Int("rolling-window", 12, "Rolling mean window for the line chart (<=1 disables)")
	hints := flag.Bool("hints", false, "Draw a one-line reading hint on each chart")
	noCharts := flag.Bool("no-charts", false, "Skip chart rendering (stats and findings only)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	dataset.SetLogLevel(*logLevel)

	cfg := dataset.DefaultConfig()
	cfg.StartYear = *startYear
	cfg.EndYear = *endYear
	cfg.Seed = *seed

	start := time.Now()
	created, err := dataset.EnsureFile(*dataPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[init] ensure dataset: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("[init] synthesized dataset at %s (%d rows)\n", *dataPath, cfg.Months())
	} else {
		fmt.Printf("[init] using existing dataset at %s\n", *dataPath)
	}

	recs, err := dataset.Load(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[load] %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[load] %s: %d rows\n", *dataPath, len(recs))

	// Explore: dataframe view of the same file (head/shape/types/missing).
	rep, err := explore.Inspect(*dataPath, *headN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[explore] %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[explore] shape: %d rows x %d cols\n", rep.Rows, rep.Cols)
	if rep.Head != "" {
		fmt.Printf("[explore] first %d rows:\n%s\n", *headN, rep.Head)
	}
	for _, c := range rep.Columns {
		fmt.Printf("[explore] column %-12s type=%-8s missing=%d\n", c.Name, c.Type, c.Missing)
	}
	if rep.RowsAfterDrop != rep.Rows {
		fmt.Printf("[explore] after dropping incomplete rows: %d rows\n", rep.RowsAfterDrop)
	}

	// Descriptive statistics for the passengers column.
	desc := analysis.Describe(dataset.Values(recs))
	fmt.Printf("[analysis] passengers: count=%d mean=%.2f std=%.2f min=%.0f p25=%.1f median=%.1f p75=%.1f max=%.0f\n",
		desc.Count, desc.Mean, desc.Std, desc.Min, desc.P25, desc.Median, desc.P75, desc.Max)

	// Per-year group summary.
	years := analysis.SummarizeYears(recs)
	fmt.Printf("[analysis] yearly summary (%d years):\n", len(years))
	fmt.Printf("  %-6s %-6s %-10s %-10s %-10s\n", "year", "count", "avg", "median", "std_dev")
	for _, y := range years {
		fmt.Printf("  %-6d %-6d %-10.1f %-10.1f %-10.1f\n", y.Year, y.Count, y.Avg, y.Median, y.StdDev)
	}

	if !*noCharts {
		opts := charts.DefaultOptions()
		opts.Bins = *bins
		opts.RollingWindow = *rollingWindow
		opts.Hints = *hints
		if err := charts.WriteAll(recs, years, opts, *outDir); err != nil {
			fmt.Fprintf(os.Stderr, "[charts] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[charts] wrote %d charts to %s/\n", len(charts.Filenames), *outDir)
	}

	fmt.Println("===== Findings & Observations =====")
	for i, f := range analysis.Findings(desc, years) {
		fmt.Printf("%d. %s\n", i+1, f)
	}
	fmt.Println("===================================")
	dataset.TimeTrack(start, "pipeline")
}
