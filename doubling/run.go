package doubling

import (
	"fmt"

	"github.com/carbocation/growthcurve/plate"
)

// WellDoublingTimes runs the full per-well pipeline: base-subtracted
// measurements, conditioned for log transform, log2, then windowed
// regression. The well's base must be resolved (see FindBase).
func WellDoublingTimes(w *plate.Well, times plate.TimeAxis, windowSize int) ([]float64, error) {
	lessBase, err := w.MeasurementsLessBase()
	if err != nil {
		return nil, err
	}

	logMeasurements := Log2(Condition(lessBase))

	return DoublingTimes(logMeasurements, times.Hours, windowSize)
}

// Run estimates doubling times for every well on the plate, returning one
// estimate sequence per well keyed by label in plate order. The first
// failing well aborts the run with its label attached; callers that would
// rather skip bad wells can drive WellDoublingTimes themselves.
func Run(p *plate.Plate, windowSize int) (*ResultSet, error) {
	out := NewResultSet()

	for _, w := range p.Wells() {
		estimates, err := WellDoublingTimes(w, p.Times, windowSize)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", w.Label, err)
		}

		out.Add(w.Label, estimates)
	}

	return out, nil
}
