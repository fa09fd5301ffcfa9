// Package replicate tracks the repeated measurements taken for one strain at
// one time point, filters out suspected artifacts, and produces the robust
// aggregates that ranking and feature generation consume. A Record is built
// up by Merge calls during loading, narrowed by the two filter passes, and
// read-only thereafter. Records are independent of one another, so distinct
// Records may be processed on separate goroutines, but a single Record must
// only ever see one sequence of merge, filter, and read calls.
package replicate

import (
	"math"
	"strconv"
	"strings"
)

// Reading is one well's measurement for a sample: how much threonine it
// produced, how dense the culture grew, and where it was physically measured.
// Valid starts true unless the OD already disqualifies the well at merge
// time; the filter passes may later clear it, and nothing ever sets it back.
type Reading struct {
	Production float64 // threonine, g/L
	Density    float64 // OD600; NaN when unmeasured
	Experiment string
	Well       string
	Valid      bool
}

// Origin renders the experiment-and-well label used in audit output.
func (rd Reading) Origin() string {
	return rd.Experiment + ":" + rd.Well
}

// Record accumulates every replicate observed for one (strain, time point)
// sample. Two Records with the same StrainID and TimePoint describe the same
// sample even when their measurements differ; Key captures that identity.
type Record struct {
	StrainID  string
	TimePoint float64 // hours of growth

	cfg      Config
	readings []Reading

	suspicious bool
	oldStrain  bool
	production *float64
}

// NewRecord creates an empty Record for one sample. The Config is captured
// here so that every later merge and filter call sees the same tuning.
func NewRecord(strainID string, timePoint float64, cfg Config) *Record {
	return &Record{
		StrainID:  strainID,
		TimePoint: timePoint,
		cfg:       cfg,
	}
}

// Merge appends one observed well. The validity bit is decided now: an
// unmeasured (NaN) OD is taken on faith, anything below MinDensity means the
// culture never grew and the well can't count toward aggregates.
func (r *Record) Merge(production, density float64, experiment, well string) {
	r.readings = append(r.readings, Reading{
		Production: production,
		Density:    density,
		Experiment: experiment,
		Well:       well,
		Valid:      math.IsNaN(density) || density >= r.cfg.MinDensity,
	})
}

// Readings exposes the replicates in insertion order, mask bits included.
func (r *Record) Readings() []Reading {
	return r.readings
}

func (r *Record) validCount() int {
	n := 0
	for _, rd := range r.readings {
		if rd.Valid {
			n++
		}
	}
	return n
}

func (r *Record) productionSeries() (values []float64, valid []bool) {
	values = make([]float64, len(r.readings))
	valid = make([]bool, len(r.readings))
	for i, rd := range r.readings {
		values[i] = rd.Production
		valid[i] = rd.Valid
	}
	return values, valid
}

// Production is the sample's aggregate threonine output. The first call
// computes it via the configured mean strategy and memoizes the result; later
// calls return the memoized value even if the mask has been narrowed in the
// meantime. Call this only after both filter passes have run.
func (r *Record) Production() float64 {
	if r.production == nil {
		values, valid := r.productionSeries()
		p := r.cfg.Mean.GoodMean(values, valid)
		r.production = &p
	}

	return *r.production
}

// Density is the aggregate OD over valid replicates, recomputed on every
// call. A valid replicate with an unmeasured OD contributes its NaN, so the
// result goes NaN whenever any surviving well skipped the OD read; reports
// display this value but nothing ranks on it.
func (r *Record) Density() float64 {
	values := make([]float64, len(r.readings))
	valid := make([]bool, len(r.readings))
	for i, rd := range r.readings {
		values[i] = rd.Density
		valid[i] = rd.Valid
	}

	return r.cfg.Mean.GoodMean(values, valid)
}

// NormalizedProduction is the mean of production/OD over replicates that are
// both valid and actually have an OD measurement. With no such replicate it
// returns 0, not NaN, so reports stay finite.
func (r *Record) NormalizedProduction() float64 {
	values := make([]float64, len(r.readings))
	valid := make([]bool, len(r.readings))
	usable := 0
	for i, rd := range r.readings {
		if rd.Valid && !math.IsNaN(rd.Density) {
			values[i] = rd.Production / rd.Density
			valid[i] = true
			usable++
		}
	}

	if usable == 0 {
		return 0
	}

	return r.cfg.Mean.GoodMean(values, valid)
}

// ProductionRate is aggregate production per hour of growth. Recomputed on
// every call, and deliberately not guarded against a zero TimePoint: a
// time-zero sample yields +Inf and shows up unmistakably in the report.
func (r *Record) ProductionRate() float64 {
	values, valid := r.productionSeries()

	return r.cfg.Mean.GoodMean(values, valid) / r.TimePoint
}

// ProductionRange is the spread between the highest and lowest valid
// production values, or 0 when fewer than two replicates remain valid.
func (r *Record) ProductionRange() float64 {
	min, max := math.Inf(1), math.Inf(-1)
	n := 0
	for _, rd := range r.readings {
		if !rd.Valid {
			continue
		}
		n++
		if rd.Production < min {
			min = rd.Production
		}
		if rd.Production > max {
			max = rd.Production
		}
	}

	if n < 2 {
		return 0
	}

	return max - min
}

// Origins lists every replicate's experiment:well label in insertion order,
// including replicates whose mask bit has been cleared. Audit output needs
// to show which wells were consulted, not just which ones survived.
func (r *Record) Origins() string {
	out := make([]string, 0, len(r.readings))
	for _, rd := range r.readings {
		out = append(out, rd.Origin())
	}

	return strings.Join(out, ", ")
}

// ProductionList renders every replicate's raw production value to four
// decimals, unfiltered by validity, for diagnostic display.
func (r *Record) ProductionList() string {
	out := make([]string, 0, len(r.readings))
	for _, rd := range r.readings {
		out = append(out, strconv.FormatFloat(rd.Production, 'f', 4, 64))
	}

	return strings.Join(out, ",")
}

// IsSuspicious reports whether filtering eliminated every valid replicate.
// The flag is sticky; once a sample is suspicious it stays suspicious.
func (r *Record) IsSuspicious() bool {
	return r.suspicious
}

// OldStrain reports whether this strain was already screened in a previous
// round, so reports can separate re-tests from new candidates.
func (r *Record) OldStrain() bool {
	return r.oldStrain
}

// SetOldStrain marks the strain as previously screened.
func (r *Record) SetOldStrain(old bool) {
	r.oldStrain = old
}
