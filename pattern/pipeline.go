package pattern

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pattern/dsp/core"
	"github.com/cwbudde/algo-pattern/dsp/grid"
	"github.com/cwbudde/algo-pattern/dsp/smooth"
)

// Data returns the derived view. The slices are freshly allocated.
func (p *Pattern) Data() (x, y []float64, err error) {
	x, y, bkg, err := p.beforeAutoBackground()
	if err != nil {
		return nil, nil, err
	}
	if bkg != nil {
		floats.Sub(y, bkg)
	}

	floats.Scale(p.scaling, y)
	floats.AddConst(p.offset, y)
	return x, y, nil
}

// X returns the x values of the derived view.
func (p *Pattern) X() ([]float64, error) {
	x, _, err := p.Data()
	return x, err
}

// Y returns the y values of the derived view.
func (p *Pattern) Y() ([]float64, error) {
	_, y, err := p.Data()
	return y, err
}

// AutoBackgroundPattern returns the curve the automatic background step
// subtracts, on the grid it is subtracted on. It is nil when no estimator
// is set.
func (p *Pattern) AutoBackgroundPattern() (*Pattern, error) {
	if p.autoBkg == nil {
		return nil, nil
	}
	x, _, bkg, err := p.beforeAutoBackground()
	if err != nil {
		return nil, err
	}
	return New(x, bkg)
}

// beforeAutoBackground runs the pipeline up to the automatic background
// subtraction and returns the current samples with the estimated
// background. bkg is nil without an estimator.
func (p *Pattern) beforeAutoBackground() (x, y, bkg []float64, err error) {
	x, y = slices.Clone(p.x), slices.Clone(p.y)

	if p.smoothing > 0 {
		y, err = smooth.Gaussian(y, p.smoothing)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("pattern: smoothing: %w", err)
		}
	}

	if p.bkg != nil {
		x, y, err = p.subtractBackground(x, y)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if p.autoBkg == nil {
		return x, y, nil, nil
	}

	if p.roi != nil {
		idx := core.Select(x, p.roi.ContainsOpen)
		x, y = core.Take(x, idx), core.Take(y, idx)
	}
	bkg, err = p.autoBkg.Extract(x, y, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pattern: auto background: %w", err)
	}
	return x, y, bkg, nil
}

func (p *Pattern) subtractBackground(x, y []float64) ([]float64, []float64, error) {
	bx, by, err := p.bkg.Data()
	if err != nil {
		return nil, nil, fmt.Errorf("pattern: background %q: %w", p.bkg.name, err)
	}

	a, err := grid.Align(x, bx, by)
	if err != nil {
		return nil, nil, rangeError(err, p.bkg)
	}

	y = core.Take(y, a.Index)
	floats.Sub(y, a.Y)
	return a.X, y, nil
}
