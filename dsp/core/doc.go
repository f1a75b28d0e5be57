// Package core holds the small numeric helpers shared by the sampled-signal
// packages: closed ranges, arange-style grids, index selection and spacing.
package core
