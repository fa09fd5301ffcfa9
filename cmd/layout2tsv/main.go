// layout2tsv flattens a plate-layout XLS workbook into a plate/well/strain
// TSV, for cross-checking the wells claimed by a readings file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fermlab/threoqc/assay"
)

func main() {
	var filename string

	flag.StringVar(&filename, "filename", "", "Name of XLS plate-layout file")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	assignments, err := assay.LoadLayout(filename)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Parsed", len(assignments), "well assignments")

	fmt.Println(strings.Join([]string{"plate", "well", "strain"}, "\t"))
	for _, a := range assignments {
		fmt.Printf("%s\t%s\t%s\n", a.Plate, a.Well, a.Strain)
	}
}
