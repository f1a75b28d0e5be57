// Package background estimates slowly varying baselines under peaked data.
//
// [SmoothBruckner] combines the iterative Bruckner smoothing with a
// Chebyshev polynomial fit: the smoothing repeatedly pulls every sample
// above a running boxcar mean down to that mean, which erodes peaks while
// keeping the baseline, and the fit turns the eroded curve into a smooth
// background.
package background
