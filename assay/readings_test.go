package assay

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fermlab/threoqc/replicate"
	"github.com/fermlab/threoqc/robustmean"
)

const testReadings = "strain\ttime_h\tproduction_gl\tod\texperiment\twell\n" +
	"THR-001\t24\t1.2\t0.9\tEXP1\tA1\n" +
	"THR-001\t24\t1.4\tNA\tEXP1\tA2\n" +
	"THR-001\t24\t1.3\t0.05\tEXP1\tA3\n" +
	"THR-002\t24\t0.7\t1.1\tEXP1\tB1\n" +
	"THR-001\t48\t2.1\t1.0\tEXP2\tA1\n"

func writeReadings(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "readings.tsv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadReadings(t *testing.T) {
	cfg := replicate.Config{MinDensity: 0.1, AlertRange: 1.2, Mean: robustmean.TrimExtremes{}}

	records, err := LoadReadings(writeReadings(t, testReadings), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if got, expected := len(records), 3; got != expected {
		t.Fatalf("Samples: got %d, expected %d", got, expected)
	}

	rec := records[replicate.Key{StrainID: "THR-001", TimePoint: 24}]
	if rec == nil {
		t.Fatal("Missing record for THR-001 at 24h")
	}

	readings := rec.Readings()
	if got, expected := len(readings), 3; got != expected {
		t.Fatalf("Replicates for THR-001 at 24h: got %d, expected %d", got, expected)
	}

	// The NA OD parses to NaN and is accepted; the 0.05 OD never grew.
	if !math.IsNaN(readings[1].Density) {
		t.Fatalf("Expected NaN OD for the NA cell, got %f", readings[1].Density)
	}
	for i, expected := range []bool{true, true, false} {
		if readings[i].Valid != expected {
			t.Fatalf("Validity at %d: got %t, expected %t", i, readings[i].Valid, expected)
		}
	}

	// Wells merge in file order.
	if got, expected := rec.Origins(), "EXP1:A1, EXP1:A2, EXP1:A3"; got != expected {
		t.Fatalf("Origins: got %q, expected %q", got, expected)
	}
}

func TestLoadReadingsBadOD(t *testing.T) {
	bad := "strain\ttime_h\tproduction_gl\tod\texperiment\twell\n" +
		"THR-001\t24\t1.2\tbroken\tEXP1\tA1\n"

	if _, err := LoadReadings(writeReadings(t, bad), replicate.DefaultConfig()); err == nil {
		t.Fatal("Expected an error for an unparseable OD cell")
	}
}

func TestWellReadingDensity(t *testing.T) {
	type expectations struct {
		OD  string
		NaN bool
	}

	for _, v := range []expectations{
		{"", true},
		{"NA", true},
		{"nan", true},
		{"0.85", false},
	} {
		d, err := WellReading{OD: v.OD}.Density()
		if err != nil {
			t.Fatalf("\nError with input: %+v\n%v", v, err)
		}
		if math.IsNaN(d) != v.NaN {
			t.Fatalf("\nError with input: %+v\nNaN: %t\nExpected: %t\n", v, math.IsNaN(d), v.NaN)
		}
	}
}
