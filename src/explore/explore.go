// Package explore provides a dataframe view of the dataset CSV: head rows,
// shape, column types and missing-value counts.
package explore

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// Column describes one CSV column as seen by the dataframe loader.
type Column struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Missing int    `json:"missing"`
}

// Report summarizes the loaded frame.
type Report struct {
	Rows          int      `json:"rows"`
	Cols          int      `json:"cols"`
	Columns       []Column `json:"columns"`
	RowsAfterDrop int      `json:"rows_after_drop"`
	Head          string   `json:"-"`
}

// Inspect loads the CSV into a dataframe and reports shape, per-column types
// and missing counts, rows remaining after dropping incomplete rows, and the
// first headN rows rendered as a table.
func Inspect(path string, headN int) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, fmt.Errorf("read %s: %w", path, df.Err)
	}
	rep := &Report{Rows: df.Nrow(), Cols: df.Ncol()}
	names := df.Names()
	types := df.Types()
	incomplete := map[int]bool{}
	for i, name := range names {
		missing := 0
		for j, nan := range df.Col(name).IsNaN() {
			if nan {
				missing++
				incomplete[j] = true
			}
		}
		typ := ""
		if i < len(types) {
			typ = string(types[i])
		}
		rep.Columns = append(rep.Columns, Column{Name: name, Type: typ, Missing: missing})
	}
	rep.RowsAfterDrop = rep.Rows - len(incomplete)
	if headN > rep.Rows {
		headN = rep.Rows
	}
	if headN > 0 {
		idx := make([]int, headN)
		for i := range idx {
			idx[i] = i
		}
		rep.Head = df.Subset(idx).String()
	}
	return rep, nil
}
