// Package plate holds the data model for one microplate run: the wells,
// their measurement series, and the time axis shared by every well.
package plate

import (
	"fmt"
	"math"
)

// UnresolvedStartIndex is the start index of a well whose artifact cutoff
// has not yet been chosen.
const UnresolvedStartIndex = -1

// Well is one sample position on the plate: its grid label (e.g. "A1"),
// the OD600 measurements in instrument order, and the strain and dilution
// annotations joined from the hand-made label file.
//
// The TECAN optics produce a transient spike at the start of a run, so
// each well carries the index of the first measurement past that artifact
// (StartIndex) and the noise-floor value subtracted before log transform
// (Base). Both begin unresolved and are each set exactly once during
// preprocessing.
type Well struct {
	Label    string
	Strain   string
	Dilution float64

	measurements []float64
	startIndex   int
	base         float64
}

// NewWell creates a well with its start index and base unresolved.
func NewWell(label, strain string, dilution float64, measurements []float64) *Well {
	return &Well{
		Label:        label,
		Strain:       strain,
		Dilution:     dilution,
		measurements: measurements,
		startIndex:   UnresolvedStartIndex,
		base:         math.NaN(),
	}
}

// Len returns the number of measurements.
func (w *Well) Len() int {
	return len(w.measurements)
}

// Measurements returns the full measurement series.
func (w *Well) Measurements() []float64 {
	return w.measurements
}

// MeasurementRange returns measurements [start, end), clamped to the
// series bounds.
func (w *Well) MeasurementRange(start, end int) []float64 {
	if start < 0 {
		start = 0
	}
	if end > len(w.measurements) {
		end = len(w.measurements)
	}
	if start >= end {
		return nil
	}

	return w.measurements[start:end]
}

// Measurement returns the single measurement at index i.
func (w *Well) Measurement(i int) float64 {
	return w.measurements[i]
}

// StartIndex returns the index of the first measurement past the startup
// artifact, or UnresolvedStartIndex if it has not been chosen.
func (w *Well) StartIndex() int {
	return w.startIndex
}

// StartResolved reports whether the artifact start index has been chosen.
func (w *Well) StartResolved() bool {
	return w.startIndex != UnresolvedStartIndex
}

// SetStartIndex records the artifact start index. Out-of-range indexes are
// rejected so a bad persisted index file cannot corrupt the run.
func (w *Well) SetStartIndex(i int) error {
	if i < 0 || i >= len(w.measurements) {
		return fmt.Errorf("well %s: start index %d out of range [0, %d)", w.Label, i, len(w.measurements))
	}
	w.startIndex = i

	return nil
}

// Base returns the resolved noise floor, or NaN if it has not been found.
// A base may legitimately be negative: it is a measured minimum, and
// instrument noise can dip below true zero.
func (w *Well) Base() float64 {
	return w.base
}

// BaseResolved reports whether the base has been found.
func (w *Well) BaseResolved() bool {
	return !math.IsNaN(w.base)
}

// SetBase records the noise floor for this well.
func (w *Well) SetBase(base float64) {
	w.base = base
}

// MeasurementsLessBase returns the full series with the resolved base
// subtracted from every measurement. The base must be resolved first.
func (w *Well) MeasurementsLessBase() ([]float64, error) {
	if !w.BaseResolved() {
		return nil, ErrBaseUnresolved
	}

	out := make([]float64, len(w.measurements))
	for i, m := range w.measurements {
		out[i] = m - w.base
	}

	return out, nil
}
