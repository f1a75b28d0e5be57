package background

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-pattern/dsp/chebyshev"
	"github.com/cwbudde/algo-pattern/dsp/core"
)

// Default estimator settings.
const (
	DefaultSmoothWidth = 0.1
	DefaultIterations  = 50
	DefaultChebOrder   = 50
)

var (
	// ErrTooFewPoints indicates fewer than two samples inside the fit region.
	ErrTooFewPoints = errors.New("background: need at least two points in the region of interest")
	// ErrInvalidParameter indicates a negative count or a non-finite width.
	ErrInvalidParameter = errors.New("background: invalid parameter")
	// ErrLengthMismatch indicates x and y slices of different length.
	ErrLengthMismatch = errors.New("background: x and y must have the same length")
)

// SmoothBruckner is the auto-background estimator. SmoothWidth is given in
// x units; it is converted to a half window in samples using the mean
// sample spacing of the fitted region.
type SmoothBruckner struct {
	SmoothWidth float64 `json:"smooth_width" yaml:"smooth_width"`
	Iterations  int     `json:"iterations" yaml:"iterations"`
	ChebOrder   int     `json:"cheb_order" yaml:"cheb_order"`
}

// Option configures a SmoothBruckner.
type Option func(*SmoothBruckner)

// WithSmoothWidth sets the smoothing width in x units.
func WithSmoothWidth(w float64) Option {
	return func(b *SmoothBruckner) {
		b.SmoothWidth = w
	}
}

// WithIterations sets the number of smoothing passes.
func WithIterations(n int) Option {
	return func(b *SmoothBruckner) {
		b.Iterations = n
	}
}

// WithChebOrder sets the Chebyshev polynomial degree.
func WithChebOrder(n int) Option {
	return func(b *SmoothBruckner) {
		b.ChebOrder = n
	}
}

// New returns an estimator with default settings modified by opts.
func New(opts ...Option) *SmoothBruckner {
	b := Default()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// NewSmoothBruckner returns an estimator with explicit settings.
func NewSmoothBruckner(smoothWidth float64, iterations, chebOrder int) *SmoothBruckner {
	return &SmoothBruckner{
		SmoothWidth: smoothWidth,
		Iterations:  iterations,
		ChebOrder:   chebOrder,
	}
}

// Default returns an estimator with width 0.1, 50 iterations and order 50.
func Default() *SmoothBruckner {
	return NewSmoothBruckner(DefaultSmoothWidth, DefaultIterations, DefaultChebOrder)
}

// Clone returns an independent copy of b.
func (b *SmoothBruckner) Clone() *SmoothBruckner {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// Validate checks the settings.
func (b *SmoothBruckner) Validate() error {
	switch {
	case !core.Finite(b.SmoothWidth):
		return fmt.Errorf("%w: smooth width %v", ErrInvalidParameter, b.SmoothWidth)
	case b.Iterations < 0:
		return fmt.Errorf("%w: iterations %d", ErrInvalidParameter, b.Iterations)
	case b.ChebOrder < 0:
		return fmt.Errorf("%w: chebyshev order %d", ErrInvalidParameter, b.ChebOrder)
	}
	return nil
}

// TransformX applies fn to the smoothing width so that it follows a change
// of the x axis. The counts are untouched.
func (b *SmoothBruckner) TransformX(fn func(float64) float64) {
	b.SmoothWidth = fn(b.SmoothWidth)
}

// Extract estimates the background of (x, y). When roi is non-nil only the
// samples strictly inside it take part in the smoothing and the fit; the
// fitted polynomial is still evaluated at every x, extrapolating outside
// the region. The result has len(x) samples.
func (b *SmoothBruckner) Extract(x, y []float64, roi *core.Range) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	fx, fy := x, y
	if roi != nil {
		idx := core.Select(x, roi.ContainsOpen)
		fx, fy = core.Take(x, idx), core.Take(y, idx)
	}
	if len(fx) < 2 {
		return nil, ErrTooFewPoints
	}

	halfWidth, err := b.windowHalfWidth(fx)
	if err != nil {
		return nil, err
	}
	smoothed := Strip(fy, halfWidth, b.Iterations)

	lo, hi := fx[0], fx[len(fx)-1]
	coef, err := chebyshev.Fit(chebyshev.MapDomain(fx, lo, hi), smoothed, b.ChebOrder)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return chebyshev.EvalAll(coef, chebyshev.MapDomain(x, lo, hi)), nil
}

// windowHalfWidth converts the smoothing width into a sample count over x.
// A width spanning more samples than x holds is rejected.
func (b *SmoothBruckner) windowHalfWidth(x []float64) (int, error) {
	if b.SmoothWidth == 0 {
		return 0, nil
	}
	ratio := math.Abs(b.SmoothWidth / core.MeanSpacing(x))
	if !core.Finite(ratio) || ratio > float64(len(x)) {
		return 0, fmt.Errorf("%w: smooth width %v spans more than %d samples", ErrInvalidParameter, b.SmoothWidth, len(x))
	}
	return int(ratio), nil
}

// Strip runs the Bruckner smoothing on y with a window of 2*halfWidth+1
// samples. The input is padded with halfWidth copies of its edge values and
// clipped at avg+2(avg-min) before the passes. Every pass sweeps once from
// left to right, replacing samples above the running mean by the mean and
// updating the mean in place; the last 2*halfWidth+2 samples are not
// visited. A non-positive halfWidth or iteration count returns a copy. A
// halfWidth above len(y) is capped at len(y); the padding then outweighs
// the data in the clip ceiling and no sample is visited.
func Strip(y []float64, halfWidth, iterations int) []float64 {
	if halfWidth <= 0 || iterations <= 0 || len(y) == 0 {
		return slices.Clone(y)
	}

	n := len(y)
	w := core.ClampInt(halfWidth, 0, n)
	buf := make([]float64, n+2*w)
	for i := range w {
		buf[i] = y[0]
		buf[n+w+i] = y[n-1]
	}
	copy(buf[w:], y)

	avg := stat.Mean(buf, nil)
	ceiling := avg + 2*(avg-floats.Min(buf))
	for i, v := range buf {
		if v > ceiling {
			buf[i] = ceiling
		}
	}

	window := float64(2*w + 1)
	for range iterations {
		wavg := stat.Mean(buf[:2*w+1], nil)
		for i := w; i < n-w-2; i++ {
			shift := buf[i+w+1] - buf[i-w]
			if buf[i] > wavg {
				next := wavg
				wavg += ((next - buf[i]) + shift) / window
				buf[i] = next
			} else {
				wavg += shift / window
			}
		}
	}

	return buf[w : w+n]
}
