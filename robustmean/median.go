package robustmean

import "github.com/montanaflynn/stats"

// Median returns the median of the surviving values. Being an order
// statistic it shrugs off a single wild replicate without any tuning.
type Median struct{}

func (Median) GoodMean(values []float64, valid []bool) float64 {
	kept := survivors(values, valid)
	if len(kept) == 0 {
		return 0
	}

	m, err := stats.Median(kept)
	if err != nil {
		// stats.Median only errors on empty input, which is handled above.
		return 0
	}

	return m
}
