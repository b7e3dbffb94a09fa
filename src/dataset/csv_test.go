package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndYear = cfg.StartYear + 1
	recs, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	path := filepath.Join(t.TempDir(), "flights.csv")
	if err := Save(path, recs); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("roundtrip row count %d != %d", len(got), len(recs))
	}
	for i := range recs {
		if got[i] != recs[i] {
			t.Fatalf("row %d mismatch: %+v vs %+v", i, got[i], recs[i])
		}
	}
}

func TestLoadMonthNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.csv")
	content := "year,month,passengers\n2001,January,120\n2001,feb,130\n2001,3,140\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 rows got %d", len(recs))
	}
	if recs[0].Month != time.January || recs[1].Month != time.February || recs[2].Month != time.March {
		t.Fatalf("month parsing wrong: %+v", recs)
	}
}

func TestLoadShuffledHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shuffled.csv")
	content := "passengers,year,month\n250,2010,6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if recs[0].Year != 2010 || recs[0].Month != time.June || recs[0].Passengers != 250 {
		t.Fatalf("header mapping wrong: %+v", recs[0])
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile got %v", err)
	}
	// header only is also empty
	if err := os.WriteFile(path, []byte("year,month,passengers\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile for header-only file got %v", err)
	}
}

func TestLoadMalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "year,month,passengers\n2001,1,100\n2001,13,bad\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("error should carry the row number, got: %v", err)
	}
}

func TestEnsureFileDoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.csv")
	custom := "year,month,passengers\n1999,1,42\n"
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	created, err := EnsureFile(path, DefaultConfig())
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if created {
		t.Fatalf("EnsureFile reported regeneration over an existing file")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != custom {
		t.Fatalf("existing file was modified:\n%s", b)
	}
}

func TestEnsureFileGeneratesWhenMissing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndYear = cfg.StartYear // one year keeps the file small
	path := filepath.Join(t.TempDir(), "data", "flights.csv")
	created, err := EnsureFile(path, cfg)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !created {
		t.Fatalf("expected generation for missing file")
	}
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load generated: %v", err)
	}
	if len(recs) != 12 {
		t.Fatalf("expected 12 rows got %d", len(recs))
	}
}
