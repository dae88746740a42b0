package doubling

import "math"

// logFloor stands in for a non-positive measurement at the start of a
// series, close enough to zero that the log transform treats it as "no
// signal" without producing -Inf.
const logFloor = 1e-9

// Condition repairs a base-subtracted series so that every value is
// strictly positive and therefore safe to log transform. Subtracting the
// base routinely drives early measurements to zero or below, and log2 of
// those values would poison every regression window that touches them.
//
// The repair is a single left-to-right pass: a non-positive first value
// becomes logFloor; any later non-positive value is held at the previous
// repaired value, treating the reading as "no change from the last
// known-good level". Positive values pass through untouched, so an
// already-positive series comes back elementwise equal.
func Condition(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}

	out := make([]float64, len(series))

	if series[0] <= 0 {
		out[0] = logFloor
	} else {
		out[0] = series[0]
	}

	for i := 1; i < len(series); i++ {
		if series[i] <= 0 {
			out[i] = out[i-1]
		} else {
			out[i] = series[i]
		}
	}

	return out
}

// Log2 returns the elementwise base-2 logarithm of the series. On a
// conditioned series every element is finite.
func Log2(series []float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = math.Log2(v)
	}

	return out
}
