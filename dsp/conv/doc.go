// Package conv provides linear convolution of sampled signals.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain accumulation, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// [Convolve] picks one of them from the kernel length and trims the result
// according to a [Mode]:
//
//	full, err := conv.Convolve(signal, kernel, conv.ModeFull)
//	valid, err := conv.Convolve(padded, kernel, conv.ModeValid)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	oa, err := conv.NewOverlapAdd(kernel, 0)
//	out, err := oa.Process(signal)
package conv
