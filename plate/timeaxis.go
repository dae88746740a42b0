package plate

import "fmt"

// TimeAxis is the measurement clock shared by every well on a plate: the
// timepoints in seconds as recorded by the instrument, and the same
// timepoints converted to hours for regression against growth.
type TimeAxis struct {
	Seconds []float64
	Hours   []float64
}

// NewTimeAxis derives a time axis from the instrument's timepoints in
// seconds. Timepoints must be monotonically non-decreasing.
func NewTimeAxis(seconds []float64) (TimeAxis, error) {
	hours := make([]float64, len(seconds))
	for i, s := range seconds {
		if i > 0 && s < seconds[i-1] {
			return TimeAxis{}, fmt.Errorf("timepoint %d (%f s) precedes timepoint %d (%f s)", i, s, i-1, seconds[i-1])
		}
		hours[i] = s / 3600
	}

	return TimeAxis{Seconds: seconds, Hours: hours}, nil
}

// Len returns the number of timepoints.
func (t TimeAxis) Len() int {
	return len(t.Seconds)
}
