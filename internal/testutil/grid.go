// Package testutil holds fixtures and tolerance checks shared by the tests.
package testutil

import "math"

// Linspace returns n evenly spaced samples over [lo, hi] with both
// endpoints exact.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Map returns fn applied to every element of x.
func Map(x []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}
	return out
}

// Sin returns sin(x) elementwise.
func Sin(x []float64) []float64 {
	return Map(x, math.Sin)
}
