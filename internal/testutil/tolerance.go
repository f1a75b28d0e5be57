package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	i, diff := MaxAbsDiff(got, want)
	if diff > eps {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
	}
}

// MaxAbsDiff returns the index and size of the largest absolute difference
// over the common prefix of a and b. NaN pairs count as infinitely apart.
func MaxAbsDiff(a, b []float64) (int, float64) {
	idx, worst := -1, 0.0
	for i := range min(len(a), len(b)) {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		if idx < 0 || d > worst {
			idx, worst = i, d
		}
	}
	return idx, worst
}
