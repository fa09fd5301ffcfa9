package robustmean

import (
	"sort"

	"github.com/gonum/stat"
)

// TrimExtremes discards the N highest and N lowest surviving values before
// averaging. When fewer than 2N+1 values survive the mask there is nothing
// sensible to trim, so the plain mean of the survivors is returned instead.
type TrimExtremes struct {
	N int
}

func (t TrimExtremes) GoodMean(values []float64, valid []bool) float64 {
	kept := survivors(values, valid)
	if len(kept) == 0 {
		return 0
	}

	if len(kept) < 2*t.N+1 {
		return stat.Mean(kept, nil)
	}

	sort.Float64s(kept)

	return stat.Mean(kept[t.N:len(kept)-t.N], nil)
}
