package pattern

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pattern/dsp/core"
	"github.com/cwbudde/algo-pattern/dsp/grid"
)

// Add returns the sum of the derived views of p and other on p's grid,
// restricted to where both overlap.
func (p *Pattern) Add(other *Pattern) (*Pattern, error) {
	return p.combine(other, floats.Add)
}

// Sub returns the derived view of p minus that of other on p's grid,
// restricted to where both overlap.
func (p *Pattern) Sub(other *Pattern) (*Pattern, error) {
	return p.combine(other, floats.Sub)
}

func (p *Pattern) combine(other *Pattern, op func(dst, s []float64)) (*Pattern, error) {
	x, y, err := p.Data()
	if err != nil {
		return nil, err
	}
	ox, oy, err := other.Data()
	if err != nil {
		return nil, err
	}

	a, err := grid.Align(x, ox, oy)
	if err != nil {
		return nil, rangeError(err, other)
	}

	y = core.Take(y, a.Index)
	op(y, a.Y)
	return New(a.X, y)
}

// MulScalar returns a pattern whose raw y is s times the raw y of p. The
// processing configuration is not carried over.
func (p *Pattern) MulScalar(s float64) *Pattern {
	y := make([]float64, len(p.y))
	floats.ScaleTo(y, s, p.y)
	return &Pattern{
		x:       cloneData(p.x),
		y:       y,
		scaling: 1,
	}
}

// Equal reports whether the derived views of p and other are identical.
// Patterns whose pipeline fails are never equal.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	x1, y1, err := p.Data()
	if err != nil {
		return false
	}
	x2, y2, err := other.Data()
	if err != nil {
		return false
	}
	return floats.Equal(x1, x2) && floats.Equal(y1, y2)
}
