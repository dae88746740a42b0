// Package doubling estimates exponential growth rates from microplate
// OD600 series: it resolves each well's noise floor, conditions the series
// for log transform, and fits sliding-window regressions whose slopes give
// per-window doubling times.
package doubling

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"

	"github.com/carbocation/growthcurve/plate"
)

// baseWindowSize is the number of measurements after the artifact start
// index scanned for the noise floor.
const baseWindowSize = 10

// FindBase resolves a well's base: the minimum of the 10 measurements
// immediately following the artifact start index. Near the end of a series
// the window narrows to whatever remains. The start index must already be
// resolved, which is the caller's job (see cmd/startreview).
func FindBase(w *plate.Well) error {
	if !w.StartResolved() {
		return fmt.Errorf("well %s: %w", w.Label, plate.ErrStartUnresolved)
	}

	start := w.StartIndex()
	window := w.MeasurementRange(start, start+baseWindowSize)

	base, err := stats.Min(window)
	if err != nil {
		return pfx.Err(fmt.Errorf("well %s: %w", w.Label, err))
	}
	w.SetBase(base)

	return nil
}

// FindBases resolves the base for every well on the plate.
func FindBases(p *plate.Plate) error {
	for _, w := range p.Wells() {
		if err := FindBase(w); err != nil {
			return err
		}
	}

	return nil
}
