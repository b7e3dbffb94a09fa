// fsviewer shows the four dataset charts in a window, one tab per chart.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/scylla8434/flightstats/src/analysis"
	"github.com/scylla8434/flightstats/src/charts"
	"github.com/scylla8434/flightstats/src/dataset"
)

func chartCanvas(img image.Image, err error) fyne.CanvasObject {
	if err != nil || img == nil {
		fmt.Fprintf(os.Stderr, "[viewer] render error: %v\n", err)
		img = image.NewRGBA(image.Rect(0, 0, 1000, 420))
	}
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(1000, 420))
	return c
}

func main() {
	file := flag.String("file", dataset.DefaultDataFile, "Path to the passengers CSV")
	hints := flag.Bool("hints", true, "Draw reading hints on the charts")
	flag.Parse()

	recs, err := dataset.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	years := analysis.SummarizeYears(recs)
	opts := charts.DefaultOptions()
	opts.Hints = *hints

	a := app.New()
	w := a.NewWindow("flightstats")
	tabs := container.NewAppTabs(
		container.NewTabItem("Line", chartCanvas(charts.Line(recs, opts))),
		container.NewTabItem("Bar", chartCanvas(charts.Bar(years, opts))),
		container.NewTabItem("Histogram", chartCanvas(charts.Histogram(dataset.Values(recs), opts))),
		container.NewTabItem("Scatter", chartCanvas(charts.Scatter(recs, opts))),
	)
	w.SetContent(tabs)
	w.Resize(fyne.NewSize(1040, 500))
	w.ShowAndRun()
}
