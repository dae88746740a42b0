package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/carbocation/growthcurve/plate"
)

type reviewOutcome int

const (
	reviewDone reviewOutcome = iota
	reviewAgain
	reviewExit
)

// reviewWell shows one well and collects the operator's decision. The
// review window bounds are shared across wells so a resize carries over.
func reviewWell(w *plate.Well, in *bufio.Scanner, out io.Writer, plotDir string, windowStart, windowEnd *int) (reviewOutcome, error) {
	vals := w.MeasurementRange(*windowStart, *windowEnd)
	if len(vals) == 0 {
		return reviewDone, fmt.Errorf("well %s: review window [%d, %d) holds no measurements", w.Label, *windowStart, *windowEnd)
	}

	maxIndex, maxOD := maxInRange(vals)

	plotPath, err := plotWell(w, vals, *windowStart, plotDir)
	if err != nil {
		return reviewDone, err
	}

	fmt.Fprintf(out, "\n\nData for well %s (%s, dilution %g); plot at %s\n", w.Label, w.Strain, w.Dilution, plotPath)
	fmt.Fprintln(out, "Timepoint\tOD600")
	fmt.Fprintln(out, "----------------------")
	for i, v := range vals {
		if i == maxIndex {
			fmt.Fprintf(out, "%d\t%g <----- MAX\n", *windowStart+i, v)
		} else {
			fmt.Fprintf(out, "%d\t%g\n", *windowStart+i, v)
		}
	}

	suggested := *windowStart + maxIndex + 1

	for {
		fmt.Fprintf(out, "\nMaximum for well %s is %g at timepoint %d\n", w.Label, maxOD, *windowStart+maxIndex)
		fmt.Fprintln(out, "Options:")
		fmt.Fprintf(out, "'y'      - accept %d as the start index\n", suggested)
		fmt.Fprintln(out, "'n'      - enter a start index manually")
		fmt.Fprintln(out, "'resize' - change the review window")
		fmt.Fprintln(out, "'exit'   - stop reviewing")

		answer, err := readLine(in)
		if err != nil {
			return reviewDone, err
		}

		switch answer {
		case "y":
			if err := w.SetStartIndex(suggested); err != nil {
				return reviewDone, err
			}
			fmt.Fprintf(out, "Start index for well %s set to %d\n", w.Label, suggested)
			return reviewDone, nil

		case "n":
			fmt.Fprintln(out, "Enter the new start index")
			index, err := readInt(in)
			if err != nil {
				return reviewDone, err
			}
			if err := w.SetStartIndex(index); err != nil {
				return reviewDone, err
			}
			fmt.Fprintf(out, "Start index for well %s set to %d\n", w.Label, index)
			return reviewDone, nil

		case "resize":
			fmt.Fprintf(out, "Currently reviewing timepoints %d to %d\n", *windowStart, *windowEnd)
			fmt.Fprintln(out, "Enter the new starting timepoint")
			start, err := readInt(in)
			if err != nil {
				return reviewDone, err
			}
			fmt.Fprintln(out, "Enter the new ending timepoint")
			end, err := readInt(in)
			if err != nil {
				return reviewDone, err
			}
			*windowStart, *windowEnd = start, end
			return reviewAgain, nil

		case "exit":
			return reviewExit, nil
		}
	}
}

// maxInRange returns the index and value of the largest measurement in
// the window. Ties go to the earliest occurrence, matching where the
// artifact spike sits.
func maxInRange(vals []float64) (int, float64) {
	maxIndex, maxOD := 0, vals[0]
	for i, v := range vals {
		if v > maxOD {
			maxIndex, maxOD = i, v
		}
	}

	return maxIndex, maxOD
}

// plotWell renders the review window to plotDir/<label>.png and returns
// the written path.
func plotWell(w *plate.Well, vals []float64, windowStart int, plotDir string) (string, error) {
	timepoints := make([]float64, len(vals))
	for i := range vals {
		timepoints[i] = float64(windowStart + i)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Well %s %s %g", w.Label, w.Strain, w.Dilution),
		Width:  512,
		Height: 256,
		XAxis: chart.XAxis{
			Name: "Timepoint",
		},
		YAxis: chart.YAxis{
			Name: "OD600",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: timepoints,
				YValues: vals,
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return "", err
	}

	outPath := filepath.Join(plotDir, w.Label+".png")
	outFile, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return "", err
	}

	return outPath, nil
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(in.Text()), nil
}

func readInt(in *bufio.Scanner) (int, error) {
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(line)
}
