package replicate

import "github.com/fermlab/threoqc/robustmean"

// Config carries the tunables that govern replicate validity and aggregation.
// One Config is assembled at startup and shared read-only by every Record, so
// a run's behavior is fixed by its flags rather than by package-level state.
type Config struct {
	// MinDensity is the lowest optical density at which a well is considered
	// to have grown. A replicate whose OD falls below it is excluded from
	// aggregation at merge time. A NaN OD means the density was never
	// measured and the replicate is accepted.
	MinDensity float64

	// AlertRange is the widest acceptable spread, in g/L, between valid
	// production values before outlier resolution is attempted.
	AlertRange float64

	// Mean computes aggregate values over the valid replicates.
	Mean robustmean.Computer
}

// DefaultConfig returns the tuning used for routine screening runs.
func DefaultConfig() Config {
	return Config{
		MinDensity: 0.1,
		AlertRange: 1.2,
		Mean:       robustmean.SigmaClip{Width: 2},
	}
}
