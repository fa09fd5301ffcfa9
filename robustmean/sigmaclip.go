package robustmean

import (
	"math"

	"github.com/gonum/stat"
)

// SigmaClip iteratively discards points lying more than Width standard
// deviations from the mean of the surviving points, then averages whatever
// remains. With the small replicate counts seen in plate assays (3-12 wells),
// a single pass usually suffices, but the loop runs until no point is
// discarded.
type SigmaClip struct {
	Width float64
}

func (s SigmaClip) GoodMean(values []float64, valid []bool) float64 {
	kept := survivors(values, valid)

	for {
		if len(kept) == 0 {
			return 0
		}
		if len(kept) < 2 {
			return kept[0]
		}

		m, sd := stat.MeanStdDev(kept, nil)
		if sd == 0 {
			return m
		}

		next := make([]float64, 0, len(kept))
		for _, v := range kept {
			if math.Abs(v-m) <= s.Width*sd {
				next = append(next, v)
			}
		}

		if len(next) == len(kept) {
			return m
		}

		kept = next
	}
}
