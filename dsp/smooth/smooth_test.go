package smooth

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestGaussianKernelNormalised(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2, 20} {
		k := GaussianKernel(sigma)
		if len(k)%2 != 1 {
			t.Fatalf("sigma %v: even kernel length %d", sigma, len(k))
		}
		if s := floats.Sum(k); math.Abs(s-1) > 1e-12 {
			t.Fatalf("sigma %v: kernel sum = %v, want 1", sigma, s)
		}
		r := len(k) / 2
		if k[r] != floats.Max(k) {
			t.Fatalf("sigma %v: kernel not centred", sigma)
		}
	}
	if got := len(GaussianKernel(2)); got != 17 {
		t.Fatalf("sigma 2: len = %d, want 17", got)
	}
}

func TestGaussianPreservesConstant(t *testing.T) {
	y := make([]float64, 40)
	for i := range y {
		y[i] = 3.5
	}
	// sigma 20 gives a kernel longer than the signal and exercises the FFT path.
	for _, sigma := range []float64{1, 20} {
		out, err := Gaussian(y, sigma)
		if err != nil {
			t.Fatalf("Gaussian: %v", err)
		}
		if len(out) != len(y) {
			t.Fatalf("len = %d, want %d", len(out), len(y))
		}
		for i, v := range out {
			if math.Abs(v-3.5) > 1e-9 {
				t.Fatalf("sigma %v: out[%d] = %v, want 3.5", sigma, i, v)
			}
		}
	}
}

func TestGaussianPreservesSum(t *testing.T) {
	y := make([]float64, 101)
	y[50] = 1

	out, err := Gaussian(y, 3)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if s := floats.Sum(out); math.Abs(s-1) > 1e-12 {
		t.Fatalf("sum = %v, want 1", s)
	}
	if out[50] >= 1 || out[50] != floats.Max(out) {
		t.Fatalf("impulse was not spread symmetrically: peak %v", out[50])
	}
	if math.Abs(out[47]-out[53]) > 1e-15 {
		t.Fatalf("asymmetric response: %v vs %v", out[47], out[53])
	}
}

func TestGaussianZeroSigmaCopies(t *testing.T) {
	y := []float64{1, 2, 3}
	out, err := Gaussian(y, 0)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	out[0] = 99
	if y[0] != 1 {
		t.Fatal("input was aliased")
	}
}

func TestGaussianInvalidSigma(t *testing.T) {
	if _, err := Gaussian([]float64{1, 2}, math.NaN()); err != ErrInvalidSigma {
		t.Fatalf("expected ErrInvalidSigma, got %v", err)
	}
}

func TestReflect(t *testing.T) {
	// d c b a | a b c d | d c b a
	want := map[int]int{-4: 3, -3: 2, -2: 1, -1: 0, 0: 0, 3: 3, 4: 3, 5: 2, 7: 0, 8: 0}
	for i, w := range want {
		if got := reflect(i, 4); got != w {
			t.Fatalf("reflect(%d, 4) = %d, want %d", i, got, w)
		}
	}
}
