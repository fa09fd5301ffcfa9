// Package robustmean provides pluggable strategies for averaging replicate
// measurements while skipping replicates that failed quality control. Each
// strategy consumes a value slice and a parallel validity mask; indices whose
// mask bit is false never contribute to the result.
package robustmean

import "fmt"

// Computer is the contract shared by all averaging strategies. GoodMean must
// ignore every index whose valid bit is false. When no index is valid, every
// strategy in this package returns 0 rather than NaN, so downstream ranking
// and reporting always see a finite number.
type Computer interface {
	GoodMean(values []float64, valid []bool) float64
}

// FromName maps a strategy name from the command line onto a Computer with
// its default tuning.
func FromName(name string) (Computer, error) {
	switch name {
	case "sigmaclip":
		return SigmaClip{Width: 2}, nil
	case "trim":
		return TrimExtremes{N: 1}, nil
	case "median":
		return Median{}, nil
	}

	return nil, fmt.Errorf("unknown mean strategy %q (want sigmaclip, trim, or median)", name)
}

func survivors(values []float64, valid []bool) []float64 {
	out := make([]float64, 0, len(values))

	for i, v := range values {
		if i < len(valid) && valid[i] {
			out = append(out, v)
		}
	}

	return out
}
