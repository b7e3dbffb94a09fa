package dataset

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	msg := "generated data/flights.csv: 312 rows (100.0% of range)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of range)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLogLevelFilters(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")
	defer SetLogLevel("info")

	Infof("quiet")
	Warnf("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn should pass at warn level: %s", out)
	}
}
