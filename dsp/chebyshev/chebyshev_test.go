package chebyshev

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func grid(n int) []float64 {
	x := floats.Span(make([]float64, n), -1, 1)
	x[n-1] = 1
	return x
}

func TestBasisMatchesClosedForm(t *testing.T) {
	x := grid(21)
	cols := Basis(x, 4)
	require.Len(t, cols, 5)

	for i, v := range x {
		assert.InDelta(t, 1, cols[0][i], 1e-15)
		assert.InDelta(t, v, cols[1][i], 1e-15)
		assert.InDelta(t, 2*v*v-1, cols[2][i], 1e-14)
		assert.InDelta(t, 4*v*v*v-3*v, cols[3][i], 1e-14)
		assert.InDelta(t, math.Cos(4*math.Acos(v)), cols[4][i], 1e-12)
	}
}

func TestEvalClenshaw(t *testing.T) {
	c := []float64{1, -2, 0.5, 3}
	for _, x := range []float64{-1, -0.3, 0, 0.7, 1, 1.5} {
		want := c[0] + c[1]*x + c[2]*(2*x*x-1) + c[3]*(4*x*x*x-3*x)
		assert.InDelta(t, want, Eval(c, x), 1e-12, "x=%v", x)
	}
	assert.Zero(t, Eval(nil, 0.5))
	assert.Equal(t, 2.0, Eval([]float64{2}, 0.5))
}

func TestFitRecoversPolynomial(t *testing.T) {
	x := grid(200)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 - 2*v + 0.5*v*v*v
	}

	for _, deg := range []int{3, 10, 50} {
		c, err := Fit(x, y, deg)
		require.NoError(t, err)
		require.Len(t, c, deg+1)
		assert.InDeltaSlice(t, y, EvalAll(c, x), 1e-9, "deg=%d", deg)
	}
}

func TestFitCapsDegree(t *testing.T) {
	x := []float64{-1, 0, 1}
	c, err := Fit(x, []float64{1, 0, 1}, 10)
	require.NoError(t, err)
	assert.Len(t, c, 3)
	assert.InDeltaSlice(t, []float64{1, 0, 1}, EvalAll(c, x), 1e-12)
}

func TestFitErrors(t *testing.T) {
	_, err := Fit(nil, nil, 2)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Fit([]float64{0, 1}, []float64{0}, 1)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Fit([]float64{0, 1}, []float64{0, 1}, -1)
	assert.ErrorIs(t, err, ErrNegativeDegree)
}

func TestMapDomain(t *testing.T) {
	got := MapDomain([]float64{2, 3, 4, 6}, 2, 4)
	assert.InDeltaSlice(t, []float64{-1, 0, 1, 3}, got, 1e-15)
	assert.Equal(t, []float64{0, 0}, MapDomain([]float64{1, 1}, 1, 1))
}
