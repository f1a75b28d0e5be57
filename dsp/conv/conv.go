package conv

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrShortInput     = errors.New("conv: input shorter than kernel")
)

// DirectThreshold is the kernel length from which [Convolve] switches to
// FFT-based overlap-add.
const DirectThreshold = 64

// Mode specifies which part of the linear convolution is returned.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input,
	// centred on the full result.
	ModeSame

	// ModeValid returns only the samples computed without zero padding,
	// len(a)-len(b)+1 of them. The input must not be shorter than the kernel.
	ModeValid
)

// Direct performs time-domain linear convolution of a and b and returns a
// new slice of length len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution into dst, which must have length
// len(a)+len(b)-1.
func DirectTo(dst, a, b []float64) {
	m := len(b)
	for i := range dst {
		dst[i] = 0
	}
	for i, v := range a {
		if v == 0 {
			continue
		}
		// dst[i:i+m] += v * b
		floats.AddScaled(dst[i:i+m], v, b)
	}
}

// Convolve convolves signal with kernel, choosing direct convolution for
// kernels shorter than [DirectThreshold] and overlap-add otherwise.
func Convolve(signal, kernel []float64, mode Mode) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if mode == ModeValid && len(signal) < len(kernel) {
		return nil, ErrShortInput
	}

	var (
		full []float64
		err  error
	)
	if len(kernel) < DirectThreshold {
		full, err = Direct(signal, kernel)
	} else {
		full, err = OverlapAddConvolve(signal, kernel)
	}
	if err != nil {
		return nil, err
	}

	return trim(full, len(signal), len(kernel), mode), nil
}

func trim(full []float64, n, m int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (m - 1) / 2
		return full[start : start+n]
	case ModeValid:
		return full[m-1 : n]
	default:
		return full
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
