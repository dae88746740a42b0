package doubling

import (
	"math"
	"math/rand"
	"testing"
)

func TestConditionIsStrictlyPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 100; trial++ {
		series := make([]float64, 1+rng.Intn(200))
		for i := range series {
			// Mix of negatives, exact zeros, and positives
			switch rng.Intn(3) {
			case 0:
				series[i] = -rng.Float64()
			case 1:
				series[i] = 0
			default:
				series[i] = rng.Float64()
			}
		}

		out := Condition(series)

		if len(out) != len(series) {
			t.Fatalf("trial %d: got %d values, expected %d", trial, len(out), len(series))
		}
		for i, v := range out {
			if v <= 0 {
				t.Fatalf("trial %d: conditioned value at %d is %g, expected strictly positive", trial, i, v)
			}
		}
	}
}

func TestConditionLeavesPositiveSeriesAlone(t *testing.T) {
	series := []float64{0.5, 1.25, 0.001, 3, 2.7}

	out := Condition(series)

	for i := range series {
		if out[i] != series[i] {
			t.Errorf("value at %d changed from %g to %g", i, series[i], out[i])
		}
	}
}

func TestConditionRepairs(t *testing.T) {
	for _, v := range []struct {
		name   string
		series []float64
		want   []float64
	}{
		{"leading zero", []float64{0, 2, 4}, []float64{logFloor, 2, 4}},
		{"leading negative", []float64{-0.5, 2, 4}, []float64{logFloor, 2, 4}},
		{"carry forward", []float64{1, -1, 1, 1}, []float64{1, 1, 1, 1}},
		{"carry forward chains", []float64{3, -1, 0, 5}, []float64{3, 3, 3, 5}},
		{"carry forward of a repaired head", []float64{-1, -1, 2}, []float64{logFloor, logFloor, 2}},
		{"empty", nil, nil},
	} {
		got := Condition(v.series)

		if len(got) != len(v.want) {
			t.Errorf("%s: got %d values, expected %d", v.name, len(got), len(v.want))
			continue
		}
		for i := range v.want {
			if got[i] != v.want[i] {
				t.Errorf("%s: value at %d is %g, expected %g", v.name, i, got[i], v.want[i])
			}
		}
	}
}

func TestLog2(t *testing.T) {
	got := Log2([]float64{1, 2, 4, 8})
	want := []float64{0, 1, 2, 3}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("value at %d is %g, expected %g", i, got[i], want[i])
		}
	}
}
