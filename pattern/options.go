package pattern

import "github.com/cwbudde/algo-pattern/dsp/background"

// Option configures a Pattern at construction.
type Option func(*Pattern)

// WithName sets the display name.
func WithName(name string) Option {
	return func(p *Pattern) {
		p.name = name
	}
}

// WithFilename records the file the data came from.
func WithFilename(filename string) Option {
	return func(p *Pattern) {
		p.filename = filename
	}
}

// WithScaling sets the multiplicative factor of the derived view.
func WithScaling(s float64) Option {
	return func(p *Pattern) {
		p.scaling = s
	}
}

// WithOffset sets the additive offset of the derived view.
func WithOffset(o float64) Option {
	return func(p *Pattern) {
		p.offset = o
	}
}

// WithSmoothing sets the Gaussian smoothing sigma in samples.
func WithSmoothing(sigma float64) Option {
	return func(p *Pattern) {
		p.smoothing = sigma
	}
}

// WithAutoBackground enables automatic background subtraction.
func WithAutoBackground(b *background.SmoothBruckner) Option {
	return func(p *Pattern) {
		p.autoBkg = b
	}
}

// WithAutoBackgroundROI restricts the automatic background to r.
func WithAutoBackgroundROI(r Range) Option {
	return func(p *Pattern) {
		p.roi = &r
	}
}
