// Package pattern models a measured one-dimensional signal, such as a powder
// diffraction pattern, as raw x/y samples plus a stack of reversible
// transformations.
//
// The raw samples are never modified by processing. Every read of
// [Pattern.Data] recomputes the derived view from the raw samples in a fixed
// order:
//
//  1. Gaussian smoothing of y (sigma in samples) when smoothing > 0
//  2. subtraction of the manual background pattern's derived data, resampled
//     onto this pattern's grid where both overlap
//  3. subtraction of the automatic background, optionally restricted to a
//     region of interest
//  4. multiplication by the scaling factor
//  5. addition of the offset
//
// A pattern used as another pattern's background notifies its dependents
// through [Pattern.Changed], so derived views always reflect the latest
// upstream state.
//
// A Pattern is not safe for concurrent mutation. Reads may run concurrently
// with each other but not with setters on the same pattern or on any
// pattern in its background chain.
package pattern
