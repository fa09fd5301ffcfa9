package replicate

import (
	"math"
	"testing"

	"github.com/fermlab/threoqc/robustmean"
)

func testConfig() Config {
	// TrimExtremes{N: 0} is a plain mean, which keeps expected values easy
	// to compute by hand.
	return Config{MinDensity: 0.1, AlertRange: 1.2, Mean: robustmean.TrimExtremes{}}
}

func recordWithProductions(productions []float64) *Record {
	rec := NewRecord("THR-001", 24, testConfig())
	for _, p := range productions {
		rec.Merge(p, math.NaN(), "EXP1", "A1")
	}
	return rec
}

func maskOf(rec *Record) []bool {
	out := make([]bool, 0, len(rec.Readings()))
	for _, rd := range rec.Readings() {
		out = append(out, rd.Valid)
	}
	return out
}

func masksEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRemoveBadZeroes(t *testing.T) {
	type expectations struct {
		Productions []float64
		Threshold   float64
		Mask        []bool
	}

	for _, v := range []expectations{
		// Lone zero among high values is the artifact.
		{[]float64{0, 0.8, 0.9}, 0.5, []bool{false, true, true}},
		// Two zeroes: could be real negatives, keep both.
		{[]float64{0, 0, 0.9}, 0.5, []bool{true, true, true}},
		// Smallest nonzero does not exceed the threshold: keep the zero.
		{[]float64{0, 0.4, 0.9}, 0.5, []bool{true, true, true}},
		// Boundary: minimum nonzero equal to the threshold is not enough.
		{[]float64{0, 0.5, 0.9}, 0.5, []bool{true, true, true}},
		// No nonzero companion at all: nothing to compare against.
		{[]float64{0}, 0.5, []bool{true}},
		// No zeroes: nothing to do.
		{[]float64{0.8, 0.9}, 0.5, []bool{true, true}},
	} {
		rec := recordWithProductions(v.Productions)
		rec.RemoveBadZeroes(v.Threshold)

		if got := maskOf(rec); !masksEqual(got, v.Mask) {
			t.Fatalf("\nError with input: %+v\nMask: %v\nExpected: %v\n", v, got, v.Mask)
		}
	}
}

func TestRemoveBadZeroesAggregates(t *testing.T) {
	rec := recordWithProductions([]float64{0, 0.8, 0.9})
	rec.RemoveBadZeroes(0.5)

	if got, expected := rec.Production(), (0.8+0.9)/2; math.Abs(got-expected) > 1e-12 {
		t.Fatalf("Production after bad-zero removal: got %f, expected %f", got, expected)
	}
}

func TestSuspiciousWhenNothingSurvives(t *testing.T) {
	rec := NewRecord("THR-001", 24, testConfig())

	// Every well failed the growth check at merge time.
	rec.Merge(1.0, 0.05, "EXP1", "A1")
	rec.Merge(1.2, 0.01, "EXP1", "A2")

	if rec.IsSuspicious() {
		t.Fatal("Record should not be suspicious before filtering")
	}

	rec.RemoveBadZeroes(0.5)

	if !rec.IsSuspicious() {
		t.Fatal("Record with no valid replicates should be suspicious after filtering")
	}
}

func TestRemoveOutlier(t *testing.T) {
	type expectations struct {
		Productions []float64
		AlertRange  float64
		Resolved    bool
		Mask        []bool
	}

	for _, v := range []expectations{
		// Spread within the acceptable range: accepted untouched.
		{[]float64{1.0, 1.5, 2.0}, 1.2, true, []bool{true, true, true}},
		// Too-wide spread but only two replicates: no majority, unresolved.
		{[]float64{1.0, 5.0}, 1.0, false, []bool{true, true}},
		// One low straggler against two agreeing high values: drop the min.
		{[]float64{1.0, 5.0, 5.1}, 1.0, true, []bool{false, true, true}},
		// One high flier against two agreeing low values: drop the max.
		{[]float64{1.0, 1.1, 5.0}, 1.0, true, []bool{true, true, false}},
		// Evenly spread: ambiguous, unresolved, untouched.
		{[]float64{1.0, 3.0, 5.0}, 1.0, false, []bool{true, true, true}},
	} {
		rec := recordWithProductions(v.Productions)

		if got := rec.RemoveOutlier(v.AlertRange); got != v.Resolved {
			t.Fatalf("\nError with input: %+v\nResolved: %t\nExpected: %t\n", v, got, v.Resolved)
		}

		if got := maskOf(rec); !masksEqual(got, v.Mask) {
			t.Fatalf("\nError with input: %+v\nMask: %v\nExpected: %v\n", v, got, v.Mask)
		}
	}
}

func TestRemoveOutlierIgnoresInvalidReplicates(t *testing.T) {
	rec := NewRecord("THR-001", 24, testConfig())

	// The wild value never grew, so it is already masked out and the
	// remaining spread is comfortably inside the alert range.
	rec.Merge(9.9, 0.05, "EXP1", "A1")
	rec.Merge(1.0, math.NaN(), "EXP1", "A2")
	rec.Merge(1.5, math.NaN(), "EXP1", "A3")

	if !rec.RemoveOutlier(1.2) {
		t.Fatal("Expected the spread over valid replicates to be acceptable")
	}

	if got := maskOf(rec); !masksEqual(got, []bool{false, true, true}) {
		t.Fatalf("Mask changed unexpectedly: %v", got)
	}
}
