// platedoubling estimates per-well doubling times from the OD600 section
// of a TECAN growth curve export. It expects the artifact start indexes to
// have been reviewed already (see startreview).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/montanaflynn/stats"

	"github.com/carbocation/growthcurve"
	"github.com/carbocation/growthcurve/doubling"
	"github.com/carbocation/growthcurve/plate"
	"github.com/carbocation/growthcurve/tecan"
)

func main() {
	var odFile, labelFile, startFile, outFile string
	var windowSize int

	flag.StringVar(&odFile, "od", "", "Tab-delimited OD600 section of the TECAN export")
	flag.StringVar(&labelFile, "labels", "", "Well annotation file (label, strain, dilution), one row per well")
	flag.StringVar(&startFile, "starts", "", "Artifact start index file produced by startreview")
	flag.StringVar(&outFile, "out", "", "Output file for the doubling time report")
	flag.IntVar(&windowSize, "window", 40, "Number of timepoints per regression window")
	flag.Parse()

	if odFile == "" || labelFile == "" || startFile == "" || outFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(growthcurve.ExpandHome(odFile), growthcurve.ExpandHome(labelFile),
		growthcurve.ExpandHome(startFile), growthcurve.ExpandHome(outFile), windowSize); err != nil {
		log.Fatalln(err)
	}
}

func run(odFile, labelFile, startFile, outFile string, windowSize int) error {
	p, err := loadPlate(odFile, labelFile)
	if err != nil {
		return err
	}

	starts, err := os.Open(startFile)
	if err != nil {
		return fmt.Errorf("could not open start index file (run startreview first): %w", err)
	}
	defer starts.Close()

	if err := tecan.ReadStartIndexes(starts, p); err != nil {
		return err
	}

	if err := doubling.FindBases(p); err != nil {
		return err
	}
	for _, w := range p.Wells() {
		log.Printf("%s starting index is %d, base is %g\n", w.Label, w.StartIndex(), w.Base())
	}

	results, err := doubling.Run(p, windowSize)
	if err != nil {
		return err
	}

	logSummaries(p, results)

	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()

	return tecan.WriteDoublingReport(out, p, results, windowSize)
}

func loadPlate(odFile, labelFile string) (*plate.Plate, error) {
	odReader, err := os.Open(odFile)
	if err != nil {
		return nil, err
	}
	defer odReader.Close()

	od, err := tecan.ReadOD600(odReader)
	if err != nil {
		return nil, err
	}

	labelReader, err := os.Open(labelFile)
	if err != nil {
		return nil, err
	}
	defer labelReader.Close()

	labels, err := tecan.ReadLabels(labelReader)
	if err != nil {
		return nil, err
	}

	return tecan.BuildPlate(od, labels)
}

// logSummaries prints one line per well with the median post-artifact
// doubling time, a quick sanity check before anyone opens the report.
func logSummaries(p *plate.Plate, results *doubling.ResultSet) {
	for _, w := range p.Wells() {
		estimates, ok := results.Estimates(w.Label)
		if !ok {
			continue
		}

		// Skip windows that start inside the artifact region.
		var post []float64
		if start := w.StartIndex(); start < len(estimates) {
			post = estimates[start:]
		}
		if len(post) == 0 {
			log.Printf("%s (%s): no post-artifact windows\n", w.Label, w.Strain)
			continue
		}

		median, err := stats.Median(post)
		if err != nil {
			continue
		}

		log.Printf("%s (%s): median post-artifact doubling time %.2f hrs over %d windows\n",
			w.Label, w.Strain, median, len(post))
	}
}
