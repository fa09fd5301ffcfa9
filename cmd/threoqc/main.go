// threoqc performs replicate-level qc on threonine assay readings and emits
// a ranked, tab-delimited per-sample report on stdout.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/fermlab/threoqc/assay"
	"github.com/fermlab/threoqc/replicate"
	"github.com/fermlab/threoqc/robustmean"
)

func main() {
	var readingsFile, oldStrainFile, meanName string
	var minDensity, alertRange, badZero float64

	flag.StringVar(&readingsFile, "readings", "", "Path to tab-delimited readings file (strain, time_h, production_gl, od, experiment, well)")
	flag.StringVar(&oldStrainFile, "oldstrains", "", "Optional path to a file listing one previously screened strain ID per line")
	flag.StringVar(&meanName, "mean", "sigmaclip", "Robust mean strategy: sigmaclip, trim, or median")
	flag.Float64Var(&minDensity, "mindensity", 0.1, "Minimum OD for a well to count as grown; lower wells are excluded at load time")
	flag.Float64Var(&alertRange, "alertrange", 1.2, "Maximum acceptable spread (g/L) between valid production values before outlier resolution is attempted")
	flag.Float64Var(&badZero, "badzero", 0.5, "A lone zero-production well is discarded when every other valid well exceeds this value (g/L)")

	flag.Parse()

	if readingsFile == "" {
		log.Fatalln("Please provide -readings")
	}

	log.Println("Launched threoqc")

	if err := runAll(readingsFile, oldStrainFile, meanName, minDensity, alertRange, badZero); err != nil {
		log.Fatalln(err)
	}
}

func runAll(readingsFile, oldStrainFile, meanName string, minDensity, alertRange, badZero float64) error {

	mean, err := robustmean.FromName(meanName)
	if err != nil {
		return err
	}

	cfg := replicate.Config{
		MinDensity: minDensity,
		AlertRange: alertRange,
		Mean:       mean,
	}

	records, err := assay.LoadReadings(readingsFile, cfg)
	if err != nil {
		return err
	}
	log.Println("Loaded", len(records), "samples from", readingsFile)

	if oldStrainFile != "" {
		n, err := markOldStrains(records, oldStrainFile)
		if err != nil {
			return err
		}
		log.Println("Marked", n, "samples as previously screened strains")
	}

	samplesWithFlags := runQC(records, badZero, alertRange)

	printReport(records, samplesWithFlags)

	return nil
}

func markOldStrains(records map[replicate.Key]*replicate.Record, oldStrainFile string) (int, error) {
	old, err := loadOldStrains(oldStrainFile)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, rec := range records {
		if _, exists := old[rec.StrainID]; exists {
			rec.SetOldStrain(true)
			marked++
		}
	}

	return marked, nil
}

func loadOldStrains(path string) (map[string]struct{}, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]struct{})
	for _, field := range strings.Fields(string(fileBytes)) {
		out[field] = struct{}{}
	}

	return out, nil
}
