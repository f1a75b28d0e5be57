package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pattern/dsp/core"
)

// ErrEmptyGrid indicates a grid definition that yields no samples.
var ErrEmptyGrid = errors.New("signal: grid has no samples")

// Peak is a Gaussian line profile.
type Peak struct {
	Amplitude float64
	Center    float64
	Sigma     float64
}

// At evaluates the peak at x.
func (p Peak) At(x float64) float64 {
	d := x - p.Center
	return p.Amplitude * math.Exp(-d*d/(2*p.Sigma*p.Sigma))
}

// Gaussian evaluates p at every x.
func Gaussian(x []float64, p Peak) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = p.At(v)
	}
	return out
}

// Polynomial evaluates Σ coef[k]·x^k at every x with Horner's scheme.
func Polynomial(x, coef []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		acc := 0.0
		for k := len(coef) - 1; k >= 0; k-- {
			acc = acc*v + coef[k]
		}
		out[i] = acc
	}
	return out
}

// DefaultPeaks returns three narrow peaks at x=3, 4 and 6.
func DefaultPeaks() []Peak {
	return []Peak{
		{Amplitude: 10, Center: 3, Sigma: 0.1},
		{Amplitude: 12, Center: 4, Sigma: 0.1},
		{Amplitude: 12, Center: 6, Sigma: 0.1},
	}
}

// Generator creates deterministic peak patterns from a shared configuration.
type Generator struct {
	start, stop, step float64
	peaks             []Peak
	background        []float64
	noise             float64
	seed              int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithGrid sets the sampling grid to start, start+step, ... below stop.
func WithGrid(start, stop, step float64) Option {
	return func(g *Generator) {
		g.start, g.stop, g.step = start, stop, step
	}
}

// WithPeaks replaces the peak list.
func WithPeaks(peaks ...Peak) Option {
	return func(g *Generator) {
		g.peaks = append([]Peak(nil), peaks...)
	}
}

// WithBackground sets polynomial background coefficients, lowest order first.
func WithBackground(coef ...float64) Option {
	return func(g *Generator) {
		g.background = append([]float64(nil), coef...)
	}
}

// WithNoise adds uniform noise in [-amplitude, amplitude].
func WithNoise(amplitude float64) Option {
	return func(g *Generator) {
		g.noise = amplitude
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator returns a generator for x in [0, 24) with step 0.01 and
// [DefaultPeaks], without background or noise, modified by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		start: 0,
		stop:  24,
		step:  0.01,
		peaks: DefaultPeaks(),
		seed:  1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate samples the pattern. It returns the grid, the total signal and
// the background component on its own.
func (g *Generator) Generate() (x, y, bkg []float64, err error) {
	x = core.Arange(g.start, g.stop, g.step)
	if len(x) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: [%v, %v) step %v", ErrEmptyGrid, g.start, g.stop, g.step)
	}

	y = make([]float64, len(x))
	for _, p := range g.peaks {
		floats.Add(y, Gaussian(x, p))
	}

	bkg = Polynomial(x, g.background)
	floats.Add(y, bkg)

	if g.noise > 0 {
		rng := rand.New(rand.NewSource(g.seed))
		for i := range y {
			y[i] += (rng.Float64()*2 - 1) * g.noise
		}
	}
	return x, y, bkg, nil
}
