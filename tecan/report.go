package tecan

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/carbocation/growthcurve/doubling"
	"github.com/carbocation/growthcurve/plate"
)

// WriteDoublingReport serializes the run's doubling time estimates as a
// tab-delimited table, one well per row, preserving the layout downstream
// spreadsheets expect:
//
//	OD600 Doubling Times
//	-	-	-	-	Timepoint:	0	1	...
//	Well	Strain	Dilution	First Timepoint After Artifact	Interval (hrs):	0 - 3.33	...
//	A1	K12	0.01	4		22.1	21.8	...
//
// One interval column is emitted per window position, labeled with the
// window's start and end times in hours.
func WriteDoublingReport(w io.Writer, p *plate.Plate, results *doubling.ResultSet, windowSize int) error {
	if _, err := fmt.Fprintln(w, "OD600 Doubling Times"); err != nil {
		return pfx.Err(err)
	}

	hours := p.Times.Hours

	timepoints := []string{"-", "-", "-", "-", "Timepoint:"}
	intervals := []string{"Well", "Strain", "Dilution", "First Timepoint After Artifact", "Interval (hrs):"}
	for n := 0; n+windowSize < len(hours); n++ {
		timepoints = append(timepoints, strconv.Itoa(n))
		intervals = append(intervals, fmt.Sprintf("%g - %g", hours[n], hours[n+windowSize]))
	}

	if _, err := fmt.Fprintln(w, strings.Join(timepoints, "\t")); err != nil {
		return pfx.Err(err)
	}
	if _, err := fmt.Fprintln(w, strings.Join(intervals, "\t")); err != nil {
		return pfx.Err(err)
	}

	for _, well := range p.Wells() {
		estimates, ok := results.Estimates(well.Label)
		if !ok {
			return pfx.Err(fmt.Errorf("no estimates for well %s", well.Label))
		}

		row := []string{
			well.Label,
			well.Strain,
			fmt.Sprintf("%g", well.Dilution),
			strconv.Itoa(well.StartIndex()),
			// The metadata block ends with an empty cell so the first
			// estimate lines up under the first interval column.
			"",
		}
		for _, est := range estimates {
			row = append(row, fmt.Sprintf("%g", est))
		}

		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
