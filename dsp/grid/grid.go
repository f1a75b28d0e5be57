package grid

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-pattern/dsp/core"
)

var (
	// ErrDomainMismatch indicates that two x-domains do not intersect.
	ErrDomainMismatch = errors.New("grid: x-domains do not overlap")
	// ErrLengthMismatch indicates x and y slices of different length.
	ErrLengthMismatch = errors.New("grid: x and y must have the same length")
	// ErrNotIncreasing indicates a reference grid that is not strictly increasing.
	ErrNotIncreasing = errors.New("grid: reference x must be strictly increasing")
)

// Alignment is a reference signal resampled onto part of a target grid.
type Alignment struct {
	// Index holds the positions of the kept target samples.
	Index []int
	// X holds the kept target x values.
	X []float64
	// Y holds the reference interpolated at X.
	Y []float64
}

// Overlap returns the closed intersection of the domains spanned by tx and rx.
func Overlap(tx, rx []float64) (lo, hi float64, err error) {
	if len(tx) == 0 || len(rx) == 0 {
		return 0, 0, ErrDomainMismatch
	}

	tlo, thi := core.Bounds(tx)
	rlo, rhi := core.Bounds(rx)
	lo = max(tlo, rlo)
	hi = min(thi, rhi)
	if lo > hi {
		return 0, 0, ErrDomainMismatch
	}
	return lo, hi, nil
}

// Align resamples (rx, ry) onto the samples of tx that fall inside the
// overlap of both domains, using linear interpolation.
func Align(tx, rx, ry []float64) (Alignment, error) {
	if len(rx) != len(ry) {
		return Alignment{}, ErrLengthMismatch
	}

	if floats.Equal(tx, rx) {
		if len(tx) == 0 {
			return Alignment{}, ErrDomainMismatch
		}
		return Alignment{
			Index: core.Indices(len(tx)),
			X:     slices.Clone(tx),
			Y:     slices.Clone(ry),
		}, nil
	}

	lo, hi, err := Overlap(tx, rx)
	if err != nil {
		return Alignment{}, err
	}

	window := core.Range{Low: lo, High: hi}
	idx := core.Select(tx, window.Contains)
	if len(idx) == 0 {
		return Alignment{}, ErrDomainMismatch
	}

	out := Alignment{
		Index: idx,
		X:     core.Take(tx, idx),
		Y:     make([]float64, len(idx)),
	}

	// A single reference sample only overlaps targets sitting exactly on it.
	if len(rx) == 1 {
		for i := range out.Y {
			out.Y[i] = ry[0]
		}
		return out, nil
	}

	if !core.StrictlyIncreasing(rx) {
		return Alignment{}, ErrNotIncreasing
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(rx, ry); err != nil {
		return Alignment{}, err
	}
	for i, x := range out.X {
		out.Y[i] = pl.Predict(x)
	}
	return out, nil
}
