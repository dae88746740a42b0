// Package tecan reads and writes the tab-delimited files surrounding a
// growth curve run: the OD600 section copied out of a TECAN export, the
// hand-made well annotation file, the persisted artifact start indexes,
// and the doubling time report.
package tecan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/pfx"

	"github.com/carbocation/growthcurve/plate"
)

// OD600Row is one well's line of the OD600 section: its grid label and its
// measurements in cycle order.
type OD600Row struct {
	Label        string
	Measurements []float64
}

// OD600 is the parsed OD600 section: the instrument timepoints in seconds
// and one row per well, in instrument order (A1 through H12).
type OD600 struct {
	Seconds []float64
	Rows    []OD600Row
}

// ReadOD600 parses the OD600 section of a TECAN export. The section is tab
// delimited and looks like:
//
//	OD600
//	Cycle Nr.	1	2	3	...
//	Time [s]	0	300	600	...
//	Temp [C]	37	37	37	...
//	A1	0.01	0.02	0.03	...
//	...
//	H12	0.01	0.02	0.03	...
//
// The section header, cycle numbers, and temperatures are skipped; the
// time row becomes the shared time axis. Every well row must carry exactly
// one measurement per timepoint; a short or long row is an error rather
// than a truncation.
func ReadOD600(r io.Reader) (*OD600, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	lines, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(lines) < 4 {
		return nil, pfx.Err(fmt.Errorf("OD600 section has %d lines, expected the 4 header lines plus well rows", len(lines)))
	}

	// Line 0 is the section label, line 1 the cycle numbers, line 3 the
	// temperatures. Only line 2, the timepoints, matters here.
	timeLine := lines[2]
	if len(timeLine) < 2 {
		return nil, pfx.Err(fmt.Errorf("time row has no timepoints"))
	}

	seconds := make([]float64, 0, len(timeLine)-1)
	for _, tok := range timeLine[1:] {
		s, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("time row: %w", err))
		}
		seconds = append(seconds, s)
	}

	out := &OD600{Seconds: seconds}

	for _, line := range lines[4:] {
		if len(line) == 0 || (len(line) == 1 && line[0] == "") {
			continue
		}

		label := line[0]
		if len(line)-1 != len(seconds) {
			return nil, pfx.Err(plate.InputShapeError{Label: label, Want: len(seconds), Got: len(line) - 1})
		}

		measurements := make([]float64, 0, len(seconds))
		for _, tok := range line[1:] {
			m, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, pfx.Err(fmt.Errorf("well %s: %w", label, err))
			}
			measurements = append(measurements, m)
		}

		out.Rows = append(out.Rows, OD600Row{Label: label, Measurements: measurements})
	}

	if len(out.Rows) == 0 {
		return nil, pfx.Err(fmt.Errorf("OD600 section has no well rows"))
	}

	return out, nil
}
