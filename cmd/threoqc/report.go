package main

import (
	"fmt"
	"strings"

	"github.com/fermlab/threoqc/replicate"
)

// printReport emits one tab-delimited row per sample, best producers first.
// Aggregates are read here for the first time, after filtering, so the
// memoized production value reflects the final mask.
func printReport(records map[replicate.Key]*replicate.Record, samplesWithFlags SampleFlags) {

	sorted := make([]*replicate.Record, 0, len(records))
	for _, rec := range records {
		sorted = append(sorted, rec)
	}
	replicate.Sort(sorted)

	fmt.Println(strings.Join([]string{
		"strain",
		"hours",
		"production",
		"density",
		"normalized_production",
		"production_rate",
		"production_range",
		"origins",
		"values",
		"old_strain",
		"suspicious",
		"flags"},
		"\t"))

	for _, rec := range sorted {
		fmt.Printf("%s\t%g\t%f\t%f\t%f\t%f\t%f\t%s\t%s\t%t\t%t\t%s\n",
			rec.StrainID,
			rec.TimePoint,
			rec.Production(),
			rec.Density(),
			rec.NormalizedProduction(),
			rec.ProductionRate(),
			rec.ProductionRange(),
			rec.Origins(),
			rec.ProductionList(),
			rec.OldStrain(),
			rec.IsSuspicious(),
			samplesWithFlags[rec.Key()].String(),
		)
	}
}
