package pattern

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-pattern/dsp/background"
	"github.com/cwbudde/algo-pattern/dsp/core"
	"github.com/cwbudde/algo-pattern/dsp/grid"
	"github.com/cwbudde/algo-pattern/event"
)

// Range is a closed x-interval.
type Range = core.Range

// Pattern is a measured signal with its processing configuration.
type Pattern struct {
	x, y []float64

	name     string
	filename string

	scaling   float64
	offset    float64
	smoothing float64

	bkg       *Pattern
	bkgHandle event.Handle

	autoBkg *background.SmoothBruckner
	roi     *Range

	changed event.Signal
}

// New returns a pattern holding copies of x and y.
func New(x, y []float64, opts ...Option) (*Pattern, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrShapeMismatch, len(x), len(y))
	}

	p := &Pattern{
		x:       cloneData(x),
		y:       cloneData(y),
		scaling: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// Empty returns a pattern without samples.
func Empty() *Pattern {
	p, _ := New(nil, nil)
	return p
}

func cloneData(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return slices.Clone(s)
}

// Changed returns the signal fired after every change of the raw data or
// of the processing configuration, including changes of the background
// pattern.
func (p *Pattern) Changed() *event.Signal {
	return &p.changed
}

// Name returns the display name.
func (p *Pattern) Name() string { return p.name }

// SetName sets the display name. It does not fire Changed.
func (p *Pattern) SetName(name string) { p.name = name }

// Filename returns the file the data was loaded from, if any.
func (p *Pattern) Filename() string { return p.filename }

// SetFilename records the source file. It does not fire Changed.
func (p *Pattern) SetFilename(filename string) { p.filename = filename }

// Scaling returns the multiplicative factor of the derived view.
func (p *Pattern) Scaling() float64 { return p.scaling }

// SetScaling sets the multiplicative factor of the derived view.
func (p *Pattern) SetScaling(s float64) {
	p.scaling = s
	p.changed.Fire()
}

// Offset returns the additive offset of the derived view.
func (p *Pattern) Offset() float64 { return p.offset }

// SetOffset sets the additive offset of the derived view.
func (p *Pattern) SetOffset(o float64) {
	p.offset = o
	p.changed.Fire()
}

// Smoothing returns the Gaussian smoothing sigma in samples.
func (p *Pattern) Smoothing() float64 { return p.smoothing }

// SetSmoothing sets the Gaussian smoothing sigma in samples; 0 disables it.
func (p *Pattern) SetSmoothing(sigma float64) {
	p.smoothing = sigma
	p.changed.Fire()
}

// Len returns the number of raw samples.
func (p *Pattern) Len() int {
	return len(p.x)
}

// OriginalX returns a copy of the raw x values.
func (p *Pattern) OriginalX() []float64 {
	return slices.Clone(p.x)
}

// OriginalY returns a copy of the raw y values.
func (p *Pattern) OriginalY() []float64 {
	return slices.Clone(p.y)
}

// SetData replaces the raw samples with copies of x and y.
func (p *Pattern) SetData(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrShapeMismatch, len(x), len(y))
	}
	p.x, p.y = cloneData(x), cloneData(y)
	p.changed.Fire()
	return nil
}

// BackgroundPattern returns the manual background, or nil.
func (p *Pattern) BackgroundPattern() *Pattern {
	return p.bkg
}

// SetBackgroundPattern subtracts bkg from the derived view and keeps the
// view in sync with it. A nil bkg removes the background. The pattern is
// left unchanged when bkg does not overlap its x-domain or when bkg
// depends on p.
func (p *Pattern) SetBackgroundPattern(bkg *Pattern) error {
	if bkg != nil {
		for b := bkg; b != nil; b = b.bkg {
			if b == p {
				return ErrBackgroundCycle
			}
		}
		bx, err := bkg.X()
		if err != nil {
			return fmt.Errorf("pattern: background %q: %w", bkg.name, err)
		}
		if _, _, err := grid.Overlap(p.x, bx); err != nil {
			return rangeError(err, bkg)
		}
	}

	p.attachBackground(bkg)
	p.changed.Fire()
	return nil
}

// attachBackground swaps the background and its subscription without
// validation or notification.
func (p *Pattern) attachBackground(bkg *Pattern) {
	if p.bkg != nil {
		p.bkg.changed.Unsubscribe(p.bkgHandle)
		p.bkg, p.bkgHandle = nil, 0
	}
	if bkg != nil {
		p.bkg = bkg
		p.bkgHandle = bkg.changed.Subscribe(p.changed.Fire)
	}
}

// AutoBackground returns the automatic background estimator, or nil.
// Edits through the returned pointer are not signalled; pass the edited
// estimator to SetAutoBackground to notify dependents.
func (p *Pattern) AutoBackground() *background.SmoothBruckner {
	return p.autoBkg
}

// SetAutoBackground enables automatic background subtraction with b, or
// disables it when b is nil.
func (p *Pattern) SetAutoBackground(b *background.SmoothBruckner) {
	p.autoBkg = b
	p.changed.Fire()
}

// AutoBackgroundROI returns a copy of the region the automatic background
// is restricted to, or nil.
func (p *Pattern) AutoBackgroundROI() *Range {
	if p.roi == nil {
		return nil
	}
	r := *p.roi
	return &r
}

// SetAutoBackgroundROI restricts the automatic background, and the derived
// view, to samples strictly inside r. A nil r removes the restriction.
func (p *Pattern) SetAutoBackgroundROI(r *Range) {
	if r == nil {
		p.roi = nil
	} else {
		roi := *r
		p.roi = &roi
	}
	p.changed.Fire()
}

// TransformX maps every raw x value through fn. The manual background is
// transformed as well and the auto background width is mapped through fn.
func (p *Pattern) TransformX(fn func(float64) float64) {
	x := make([]float64, len(p.x))
	for i, v := range p.x {
		x[i] = fn(v)
	}
	p.x = x
	if p.bkg != nil {
		p.bkg.TransformX(fn)
	}
	if p.autoBkg != nil {
		p.autoBkg.TransformX(fn)
	}
	p.changed.Fire()
}

// Copy returns an independent duplicate of p. The background pattern is
// copied recursively and the copy subscribes only to its own background.
func (p *Pattern) Copy() *Pattern {
	c := &Pattern{
		x:         cloneData(p.x),
		y:         cloneData(p.y),
		name:      p.name,
		filename:  p.filename,
		scaling:   p.scaling,
		offset:    p.offset,
		smoothing: p.smoothing,
		autoBkg:   p.autoBkg.Clone(),
		roi:       p.AutoBackgroundROI(),
	}
	if p.bkg != nil {
		c.attachBackground(p.bkg.Copy())
	}
	return c
}

func (p *Pattern) String() string {
	return fmt.Sprintf("Pattern '%s' with %d points", p.name, len(p.x))
}
