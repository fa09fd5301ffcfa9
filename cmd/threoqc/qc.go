package main

import (
	"log"

	"github.com/fermlab/threoqc/replicate"
)

// runQC runs the two filter passes over every sample in the required order
// (bad-zero removal first, then range-outlier removal) and collects flags
// for samples that need human attention. Filtering only ever narrows which
// replicates count toward aggregates; no sample is dropped.
func runQC(records map[replicate.Key]*replicate.Record, badZero, alertRange float64) SampleFlags {

	samplesWithFlags := SampleFlags{}

	for key, rec := range records {
		rec.RemoveBadZeroes(badZero)
		if rec.IsSuspicious() {
			samplesWithFlags.AddFlag(key, "NoValidReplicates")
			continue
		}

		if !rec.RemoveOutlier(alertRange) {
			samplesWithFlags.AddFlag(key, "UnresolvedRange")
		}
	}
	log.Println("Filtered bad zeroes and range outliers")

	// Number of samples with each flag:
	flagCounts := make(map[string]int)
	for _, flags := range samplesWithFlags {
		for v := range flags {
			flagCounts[v]++
		}
	}

	log.Println(len(samplesWithFlags), "samples out of", len(records), "have been flagged as potentially having invalid data")
	log.Printf("Number of samples with each flag: %+v\n", flagCounts)

	return samplesWithFlags
}
