package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scylla8434/flightstats/src/analysis"
	"github.com/scylla8434/flightstats/src/dataset"
)

func main() {
	var file string
	flag.StringVar(&file, "file", dataset.DefaultDataFile, "Path to the passengers CSV")
	flag.Parse()
	recs, err := dataset.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	years := analysis.SummarizeYears(recs)
	fmt.Printf("Total rows: %d\n", len(recs))
	fmt.Printf("Years: %d\n", len(years))
	for _, y := range years {
		fmt.Printf("%d: %d rows avg=%.1f\n", y.Year, y.Count, y.Avg)
	}
}
