// Package signal generates synthetic peak patterns: Gaussian peaks on a
// polynomial background sampled on a uniform grid, optionally with
// deterministic noise.
package signal
