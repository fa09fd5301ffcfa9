package replicate

import "math"

// RemoveBadZeroes clears the mask bit of a lone zero-production replicate
// when every other valid replicate produced well above threshold. A single
// zero among otherwise-high wells is almost always a failed well (clogged
// pin, no inoculation) rather than a true negative. The bit is cleared only
// when all three conditions hold: exactly one valid zero, at least one valid
// nonzero, and the smallest valid nonzero value exceeding threshold. After
// the pass, a sample left with no valid replicate at all is marked
// suspicious.
func (r *Record) RemoveBadZeroes(threshold float64) {
	minNonzero := math.Inf(1)
	nonzero := 0
	zeroes := 0
	zeroIndex := -1

	for i, rd := range r.readings {
		if !rd.Valid {
			continue
		}

		if rd.Production > 0 {
			nonzero++
			if rd.Production < minNonzero {
				minNonzero = rd.Production
			}
		} else if rd.Production == 0 {
			zeroes++
			zeroIndex = i
		}
	}

	if zeroes == 1 && nonzero > 0 && minNonzero > threshold {
		r.readings[zeroIndex].Valid = false
	}

	if r.validCount() == 0 {
		r.suspicious = true
	}
}

// RemoveOutlier resolves a single dominant outlier when the spread of valid
// production values exceeds alertRange. It reports true when the record is
// acceptable afterward (either the spread was fine to begin with, or exactly
// one outlying replicate was identified and masked) and false when the
// spread is too wide but no single culprit could be pinned down; callers
// typically flag such samples for manual review.
//
// The first index attaining each extreme wins, since the scan uses strict
// comparisons. With fewer than 3 valid replicates there is no majority to
// vote the outlier down, so a too-wide spread is reported unresolved.
func (r *Record) RemoveOutlier(alertRange float64) bool {
	min, max := math.Inf(1), math.Inf(-1)
	minIndex, maxIndex := -1, -1
	valid := 0

	for i, rd := range r.readings {
		if !rd.Valid {
			continue
		}

		valid++
		if rd.Production < min {
			min = rd.Production
			minIndex = i
		}
		if rd.Production > max {
			max = rd.Production
			maxIndex = i
		}
	}

	if max-min <= alertRange {
		return true
	}

	if valid < 3 {
		return false
	}

	// veryLow counts replicates far below the max; veryHigh counts those far
	// above the min. A lone member on one side with company on the other
	// identifies the outlier.
	veryLow, veryHigh := 0, 0
	for _, rd := range r.readings {
		if !rd.Valid {
			continue
		}

		if max-rd.Production > alertRange {
			veryLow++
		}
		if rd.Production-min > alertRange {
			veryHigh++
		}
	}

	switch {
	case veryHigh == 1 && veryLow > 1:
		r.readings[maxIndex].Valid = false
		return true
	case veryLow == 1 && veryHigh > 1:
		r.readings[minIndex].Valid = false
		return true
	}

	return false
}
