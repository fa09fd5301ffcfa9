// Package assay loads plate-reader output and plate-layout workbooks into
// replicate records for filtering and reporting.
package assay

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/fermlab/threoqc/replicate"
)

// WellReading is one row of the tab-delimited readings file: a single well's
// threonine and OD measurement for a strain at a time point. The od column
// is kept as text because an empty or NA cell means the OD was never
// measured, which is a legitimate state rather than a parse failure.
type WellReading struct {
	Strain     string  `csv:"strain"`
	TimeHours  float64 `csv:"time_h"`
	Production float64 `csv:"production_gl"`
	OD         string  `csv:"od"`
	Experiment string  `csv:"experiment"`
	Well       string  `csv:"well"`
}

// Density parses the od column. Empty, NA, and NaN cells all mean
// "unmeasured" and come back as NaN, which the replicate engine treats as
// acceptable growth.
func (w WellReading) Density() (float64, error) {
	switch w.OD {
	case "", "NA", "na", "NaN", "nan":
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(w.OD, 64)
	if err != nil {
		return 0, pfx.Err(err)
	}

	return v, nil
}

// LoadReadings reads the tab-delimited readings file and groups its rows
// into one Record per (strain, time point), merging wells in file order so
// replicate insertion order matches the plate reader's output order.
func LoadReadings(path string, cfg replicate.Config) (map[replicate.Key]*replicate.Record, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rows := []*WellReading{}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	out := make(map[replicate.Key]*replicate.Record)
	for _, row := range rows {
		key := replicate.Key{StrainID: row.Strain, TimePoint: row.TimeHours}

		rec, exists := out[key]
		if !exists {
			rec = replicate.NewRecord(row.Strain, row.TimeHours, cfg)
			out[key] = rec
		}

		density, err := row.Density()
		if err != nil {
			return nil, err
		}

		rec.Merge(row.Production, density, row.Experiment, row.Well)
	}

	return out, nil
}
