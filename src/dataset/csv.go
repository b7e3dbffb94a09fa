package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEmptyFile is returned when the CSV has no data rows.
var ErrEmptyFile = errors.New("no data rows in csv")

// Save writes records as CSV with header year,month,passengers. Months are
// written numerically (1..12); Load also accepts month names for older files.
func Save(path string, recs []Record) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"year", "month", "passengers"}); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(int(r.Month)),
			strconv.FormatFloat(r.Passengers, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Load reads the CSV at path into records. Column positions are taken from
// the header when present (year/month/passengers in any order); headerless
// files are assumed to be in year,month,passengers order.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f, path)
}

// LoadFromReader parses CSV content; name is used in error messages only.
func LoadFromReader(r io.Reader, name string) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	yearIdx, monthIdx, valIdx := 0, 1, 2
	first, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	headerSeen := false
	for i, h := range first {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "year":
			yearIdx = i
			headerSeen = true
		case "month":
			monthIdx = i
			headerSeen = true
		case "passengers", "value", "y":
			valIdx = i
			headerSeen = true
		}
	}

	var recs []Record
	row := 1
	parseRow := func(record []string) error {
		if len(record) <= yearIdx || len(record) <= monthIdx || len(record) <= valIdx {
			return fmt.Errorf("%s row %d: expected at least 3 fields, got %d", name, row, len(record))
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[yearIdx]))
		if err != nil {
			return fmt.Errorf("%s row %d: bad year %q", name, row, record[yearIdx])
		}
		month, ok := ParseMonth(record[monthIdx])
		if !ok {
			return fmt.Errorf("%s row %d: bad month %q", name, row, record[monthIdx])
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(record[valIdx]), 64)
		if err != nil {
			return fmt.Errorf("%s row %d: bad passengers %q", name, row, record[valIdx])
		}
		recs = append(recs, Record{Year: year, Month: month, Passengers: val})
		return nil
	}

	if !headerSeen {
		if err := parseRow(first); err != nil {
			return nil, err
		}
	}
	for {
		row++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if err := parseRow(record); err != nil {
			return nil, err
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyFile)
	}
	return recs, nil
}

// EnsureFile generates and saves the dataset only when path does not exist.
// An existing file is never touched, whatever its contents. Returns true
// when a new file was written.
func EnsureFile(path string, cfg Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		Debugf("dataset %s already present, keeping it", path)
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	recs, err := Generate(cfg)
	if err != nil {
		return false, err
	}
	if err := Save(path, recs); err != nil {
		return false, err
	}
	Infof("generated %s: %d rows (%d-01 .. %d-12)", path, len(recs), cfg.StartYear, cfg.EndYear)
	return true, nil
}
