// startreview walks an operator through choosing each well's artifact
// start index: the first timepoint past the transient spike the TECAN
// optics produce at the beginning of a run. For each well it renders the
// leading measurements to a PNG, prints them with the local maximum
// marked, and suggests the index just past that maximum. The operator
// accepts the suggestion, types an index, resizes the review window, or
// exits. Confirmed indexes are persisted for platedoubling to consume.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/carbocation/growthcurve"
	"github.com/carbocation/growthcurve/plate"
	"github.com/carbocation/growthcurve/tecan"
)

func main() {
	var odFile, labelFile, startFile, plotDir string
	var reviewWindow int

	flag.StringVar(&odFile, "od", "", "Tab-delimited OD600 section of the TECAN export")
	flag.StringVar(&labelFile, "labels", "", "Well annotation file (label, strain, dilution), one row per well")
	flag.StringVar(&startFile, "starts", "", "Output file for the confirmed start indexes")
	flag.StringVar(&plotDir, "plotdir", ".", "Directory for the per-well review plots")
	flag.IntVar(&reviewWindow, "first", 100, "Number of leading timepoints to review per well")
	flag.Parse()

	if odFile == "" || labelFile == "" || startFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(growthcurve.ExpandHome(odFile), growthcurve.ExpandHome(labelFile),
		growthcurve.ExpandHome(startFile), growthcurve.ExpandHome(plotDir), reviewWindow); err != nil {
		log.Fatalln(err)
	}
}

func run(odFile, labelFile, startFile, plotDir string, reviewWindow int) error {
	odReader, err := os.Open(odFile)
	if err != nil {
		return err
	}
	defer odReader.Close()

	od, err := tecan.ReadOD600(odReader)
	if err != nil {
		return err
	}

	labelReader, err := os.Open(labelFile)
	if err != nil {
		return err
	}
	defer labelReader.Close()

	labels, err := tecan.ReadLabels(labelReader)
	if err != nil {
		return err
	}

	p, err := tecan.BuildPlate(od, labels)
	if err != nil {
		return err
	}

	if err := reviewWells(p, bufio.NewScanner(os.Stdin), os.Stdout, plotDir, reviewWindow); err != nil {
		return err
	}

	out, err := os.Create(startFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := tecan.WriteStartIndexes(out, p); err != nil {
		return err
	}
	log.Printf("Wrote start indexes for %d wells to %s\n", p.Len(), startFile)

	return nil
}

// reviewWells runs the confirmation loop over every well. An "exit" leaves
// the remaining wells unresolved; their persisted index will be the
// unresolved sentinel, and platedoubling will refuse to run on them.
func reviewWells(p *plate.Plate, in *bufio.Scanner, out *os.File, plotDir string, reviewWindow int) error {
	windowStart, windowEnd := 0, reviewWindow

	wells := p.Wells()
	for i := 0; i < len(wells); i++ {
		outcome, err := reviewWell(wells[i], in, out, plotDir, &windowStart, &windowEnd)
		if err != nil {
			return err
		}

		switch outcome {
		case reviewAgain:
			// The operator resized the window; redo this well.
			i--
		case reviewExit:
			return nil
		}
	}

	return nil
}
