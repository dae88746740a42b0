package doubling

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/carbocation/growthcurve/plate"
)

// DoublingTimes slides a windowSize-wide window, one timepoint at a time,
// over the log2-transformed series and fits an ordinary least squares line
// of log measurement against hours at each position. The estimate for a
// window is the reciprocal of the fitted slope, in hours per doubling.
//
// A perfectly flat window has slope zero and yields the sentinel estimate
// 0, which callers must read as "no measurable change", not as an
// instantaneous doubling.
//
// Windows run while start+windowSize < len(series), so the output has
// exactly max(0, len(series)-windowSize) entries; a window size at or past
// the series length produces no windows and no error. Windows inside the
// pre-artifact region are estimated like any other; consumers filter by
// position using the well's start index.
func DoublingTimes(logMeasurements, hours []float64, windowSize int) ([]float64, error) {
	if len(logMeasurements) != len(hours) {
		return nil, plate.InputShapeError{Want: len(hours), Got: len(logMeasurements)}
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", windowSize)
	}

	out := []float64{}
	for start := 0; start+windowSize < len(logMeasurements); start++ {
		x := hours[start : start+windowSize]
		y := logMeasurements[start : start+windowSize]

		_, slope := stat.LinearRegression(x, y, nil, false)

		doublingTime := 0.0
		if slope != 0 {
			doublingTime = 1 / slope
		}

		out = append(out, doublingTime)
	}

	return out, nil
}
