// Package grid reconciles two differently sampled signals.
//
// [Align] resamples a reference signal R onto the x-grid of a target T,
// restricted to the closed overlap [max(T.min, R.min), min(T.max, R.max)].
// Target samples outside the overlap are dropped; nothing is extrapolated.
// Identical grids are passed through without interpolation so that
// aligned signals combine exactly.
package grid
