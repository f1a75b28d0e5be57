package pattern

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-pattern/dsp/core"
)

// Rebin returns a pattern of group means of factor consecutive raw samples.
// A trailing partial group is averaged over its members. For uniform
// grids this preserves the integrated intensity Σ y·Δx.
func (p *Pattern) Rebin(factor int) (*Pattern, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	n := (len(p.x) + factor - 1) / factor
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		lo, hi := i*factor, min((i+1)*factor, len(p.x))
		x[i] = stat.Mean(p.x[lo:hi], nil)
		y[i] = stat.Mean(p.y[lo:hi], nil)
	}
	return New(x, y, WithName(p.name))
}

// ExtendTo grows the raw domain to reach xValue with samples spaced by the
// mean raw spacing, filled with fill. When xValue lies inside the domain
// the result is a plain copy of the raw data.
func (p *Pattern) ExtendTo(xValue, fill float64) *Pattern {
	out := &Pattern{x: cloneData(p.x), y: cloneData(p.y), name: p.name, scaling: 1}
	if len(p.x) < 2 {
		return out
	}

	step := core.MeanSpacing(p.x)
	lo, hi := core.Bounds(p.x)

	switch {
	case xValue < lo:
		ext := core.Arange(lo-step, xValue-step/2, -step)
		slices.Reverse(ext)
		out.x = append(ext, out.x...)
		out.y = append(filled(len(ext), fill), out.y...)
	case xValue > hi:
		ext := core.Arange(hi+step, xValue+step/2, step)
		out.x = append(out.x, ext...)
		out.y = append(out.y, filled(len(ext), fill)...)
	}
	return out
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// DeleteRange returns the raw samples outside the closed interval r.
func (p *Pattern) DeleteRange(r Range) *Pattern {
	return p.keep(func(v float64) bool { return !r.Contains(v) })
}

// DeleteRanges removes every interval in turn.
func (p *Pattern) DeleteRanges(ranges []Range) *Pattern {
	out := p.keep(func(float64) bool { return true })
	for _, r := range ranges {
		out = out.DeleteRange(r)
	}
	return out
}

// Limit returns the raw samples with lo <= x <= hi.
func (p *Pattern) Limit(lo, hi float64) *Pattern {
	r := Range{Low: lo, High: hi}
	return p.keep(r.Contains)
}

func (p *Pattern) keep(fn func(float64) bool) *Pattern {
	idx := core.Select(p.x, fn)
	return &Pattern{
		x:       core.Take(p.x, idx),
		y:       core.Take(p.y, idx),
		name:    p.name,
		scaling: 1,
	}
}
