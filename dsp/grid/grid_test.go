package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func span(lo, hi float64, n int) []float64 {
	x := floats.Span(make([]float64, n), lo, hi)
	x[n-1] = hi
	return x
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name       string
		tx, rx     []float64
		wantLo     float64
		wantHi     float64
		wantErrNil bool
	}{
		{name: "nested", tx: span(0, 10, 11), rx: span(2, 5, 4), wantLo: 2, wantHi: 5, wantErrNil: true},
		{name: "partial", tx: span(0, 10, 11), rx: span(5, 15, 11), wantLo: 5, wantHi: 10, wantErrNil: true},
		{name: "touching", tx: span(0, 10, 11), rx: span(10, 20, 11), wantLo: 10, wantHi: 10, wantErrNil: true},
		{name: "disjoint", tx: span(0, 10, 50), rx: span(-10, -1, 50)},
		{name: "empty", tx: nil, rx: span(0, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, err := Overlap(tt.tx, tt.rx)
			if !tt.wantErrNil {
				assert.ErrorIs(t, err, ErrDomainMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestAlignIdenticalGridIsExact(t *testing.T) {
	x := span(-5, 5, 100)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Sin(v)
	}

	a, err := Align(x, x, y)
	require.NoError(t, err)
	assert.Equal(t, x, a.X)
	assert.Equal(t, y, a.Y)
	assert.Len(t, a.Index, len(x))
}

func TestAlignDifferentSpacing(t *testing.T) {
	tx := span(-5, 5, 100)
	rx := span(-5, 5, 99)

	a, err := Align(tx, rx, rx)
	require.NoError(t, err)
	require.Equal(t, len(tx), len(a.X))
	assert.InDeltaSlice(t, tx, a.Y, 1e-12)
}

func TestAlignNarrowsToOverlap(t *testing.T) {
	tx := span(0, 12, 121)
	rx := span(2, 8, 61)
	ry := make([]float64, len(rx))
	for i, v := range rx {
		ry[i] = 2*v + 1
	}

	a, err := Align(tx, rx, ry)
	require.NoError(t, err)
	require.NotZero(t, len(a.X))

	assert.GreaterOrEqual(t, a.X[0], 2.0)
	assert.LessOrEqual(t, a.X[len(a.X)-1], 8.0)
	for i, x := range a.X {
		assert.Equal(t, tx[a.Index[i]], x)
		assert.InDelta(t, 2*x+1, a.Y[i], 1e-12)
	}
}

func TestAlignErrors(t *testing.T) {
	_, err := Align(span(0, 10, 50), span(-10, -1, 50), span(-10, -1, 50))
	assert.True(t, errors.Is(err, ErrDomainMismatch))

	_, err = Align(span(0, 1, 5), span(0, 1, 5), span(0, 1, 4))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Align(span(0, 1, 5), []float64{0, 1, 0.5}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, ErrNotIncreasing)
}

func TestAlignIsDeterministic(t *testing.T) {
	tx := span(0, 10, 1000)
	rx := span(0, 12, 1300)
	ry := make([]float64, len(rx))
	for i, v := range rx {
		ry[i] = math.Sin(v)
	}

	a, err := Align(tx, rx, ry)
	require.NoError(t, err)
	b, err := Align(tx, rx, ry)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for i, x := range a.X {
		assert.InDelta(t, math.Sin(x), a.Y[i], 1e-4)
	}
}
