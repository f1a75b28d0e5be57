package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Range is a closed x-interval [Low, High].
type Range struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Contains reports whether v lies in [Low, High].
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// ContainsOpen reports whether v lies strictly inside (Low, High).
func (r Range) ContainsOpen(v float64) bool {
	return v > r.Low && v < r.High
}

// Arange returns start, start+step, ... excluding stop. The sample count is
// ceil((stop-start)/step) and each value is start+i*step, so long ranges do
// not accumulate drift.
func Arange(start, stop, step float64) []float64 {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}

	n := math.Ceil((stop - start) / step)
	if !(n > 0) {
		return nil
	}

	out := make([]float64, int(n))
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Bounds returns the smallest and largest value of x.
// Both are NaN for an empty slice.
func Bounds(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(x), floats.Max(x)
}

// MeanSpacing returns the average distance between consecutive samples,
// (x[n-1]-x[0])/(n-1). It is 0 for fewer than two samples.
func MeanSpacing(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return (x[len(x)-1] - x[0]) / float64(len(x)-1)
}

// StrictlyIncreasing reports whether every sample is larger than its predecessor.
func StrictlyIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return false
		}
	}
	return true
}

// Select returns the indices i for which keep(x[i]) is true.
func Select(x []float64, keep func(float64) bool) []int {
	idx := make([]int, 0, len(x))
	for i, v := range x {
		if keep(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Take gathers s[idx[0]], s[idx[1]], ... into a new slice.
func Take(s []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = s[j]
	}
	return out
}

// Indices returns 0, 1, ..., n-1.
func Indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
