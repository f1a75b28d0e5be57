// Package smooth provides Gaussian smoothing of uniformly indexed samples.
//
// The filter width is given in samples. Edges are extended by mirror
// reflection about the outer sample edge (d c b a | a b c d | d c b a) and
// the kernel is truncated at [Truncate] standard deviations.
package smooth

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pattern/dsp/conv"
	"github.com/cwbudde/algo-pattern/dsp/core"
)

// Truncate is the kernel radius in standard deviations.
const Truncate = 4.0

// ErrInvalidSigma indicates a NaN or infinite filter width.
var ErrInvalidSigma = errors.New("smooth: sigma must be finite")

// GaussianKernel returns the normalised kernel for sigma (in samples), of
// length 2*radius+1 with radius = int(Truncate*sigma + 0.5).
func GaussianKernel(sigma float64) []float64 {
	radius := int(Truncate*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-0.5 * d * d / (sigma * sigma))
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// Gaussian returns y filtered with a Gaussian of standard deviation sigma
// samples. A non-positive sigma returns an unmodified copy.
func Gaussian(y []float64, sigma float64) ([]float64, error) {
	if !core.Finite(sigma) {
		return nil, ErrInvalidSigma
	}
	if sigma <= 0 || len(y) == 0 {
		return slices.Clone(y), nil
	}

	kernel := GaussianKernel(sigma)
	radius := len(kernel) / 2

	padded := make([]float64, len(y)+2*radius)
	for i := range padded {
		padded[i] = y[reflect(i-radius, len(y))]
	}

	return conv.Convolve(padded, kernel, conv.ModeValid)
}

// reflect folds i into [0, n) by mirroring about the outer sample edges.
func reflect(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i - 1
	}
	return i
}
