// Package chebyshev fits and evaluates Chebyshev series of the first kind.
//
// Fits are computed on x values already mapped to [-1, 1] (see [MapDomain]);
// evaluation outside that interval extrapolates the same series.
package chebyshev

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyInput indicates that no samples were given to fit.
	ErrEmptyInput = errors.New("chebyshev: empty input")
	// ErrLengthMismatch indicates x and y slices of different length.
	ErrLengthMismatch = errors.New("chebyshev: x and y must have the same length")
	// ErrNegativeDegree indicates a degree below zero.
	ErrNegativeDegree = errors.New("chebyshev: degree must be >= 0")
)

// MapDomain maps x linearly so that a goes to -1 and b goes to +1.
func MapDomain(x []float64, a, b float64) []float64 {
	out := make([]float64, len(x))
	if a == b {
		return out
	}
	scale := 2 / (b - a)
	for i, v := range x {
		out[i] = scale*(v-a) - 1
	}
	return out
}

// Basis returns T_0(x) ... T_deg(x) as columns, built with the three-term
// recurrence T_{k+1} = 2x*T_k - T_{k-1}.
func Basis(x []float64, deg int) [][]float64 {
	cols := make([][]float64, deg+1)
	cols[0] = make([]float64, len(x))
	for i := range cols[0] {
		cols[0][i] = 1
	}
	if deg == 0 {
		return cols
	}
	cols[1] = append([]float64(nil), x...)

	for k := 2; k <= deg; k++ {
		next := make([]float64, len(x))
		vecmath.MulBlock(next, x, cols[k-1])
		floats.Scale(2, next)
		floats.Sub(next, cols[k-2])
		cols[k] = next
	}
	return cols
}

// Fit returns the least-squares coefficients c of y ≈ Σ c[k]·T_k(x). The
// degree is capped at len(x)-1. Columns are scaled to unit norm before the
// QR solve to keep high degrees well conditioned.
func Fit(x, y []float64, deg int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if deg < 0 {
		return nil, ErrNegativeDegree
	}
	deg = min(deg, len(x)-1)

	cols := Basis(x, deg)
	scale := make([]float64, len(cols))
	a := mat.NewDense(len(x), len(cols), nil)
	for k, col := range cols {
		scale[k] = floats.Norm(col, 2)
		if scale[k] == 0 {
			scale[k] = 1
		}
		floats.Scale(1/scale[k], col)
		a.SetCol(k, col)
	}

	var qr mat.QR
	qr.Factorize(a)

	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("chebyshev: least squares: %w", err)
		}
	}

	coef := make([]float64, len(cols))
	for k := range coef {
		coef[k] = c.AtVec(k) / scale[k]
	}
	return coef, nil
}

// Eval evaluates the series c at x using Clenshaw's recurrence.
func Eval(c []float64, x float64) float64 {
	switch len(c) {
	case 0:
		return 0
	case 1:
		return c[0]
	}

	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = 2*x*b1-b2+c[k], b1
	}
	return x*b1 - b2 + c[0]
}

// EvalAll evaluates the series c at every x.
func EvalAll(c, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = Eval(c, v)
	}
	return out
}
