package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	i, d := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	if i != 1 {
		t.Fatalf("index = %d, want 1", i)
	}
	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}
	if _, d := MaxAbsDiff(a, a); d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestMaxAbsDiffNaN(t *testing.T) {
	if _, d := MaxAbsDiff([]float64{math.NaN()}, []float64{0}); !math.IsInf(d, 1) {
		t.Fatalf("MaxAbsDiff = %v, want +Inf", d)
	}
}

func TestLinspace(t *testing.T) {
	x := Linspace(-5, 5, 100)
	if len(x) != 100 || x[0] != -5 || x[99] != 5 {
		t.Fatalf("Linspace endpoints = %v..%v (len %d)", x[0], x[len(x)-1], len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			t.Fatalf("not increasing at %d", i)
		}
	}
	if got := Linspace(3, 4, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Linspace n=1 = %v", got)
	}
	if Linspace(0, 1, 0) != nil {
		t.Fatal("Linspace n=0 should be nil")
	}
}

func TestMap(t *testing.T) {
	got := Map([]float64{1, 2}, func(v float64) float64 { return v * v })
	if got[0] != 1 || got[1] != 4 {
		t.Fatalf("Map = %v", got)
	}
	if s := Sin([]float64{0}); s[0] != 0 {
		t.Fatalf("Sin(0) = %v", s[0])
	}
}
