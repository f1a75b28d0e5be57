package pattern

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pattern/dsp/grid"
)

var (
	// ErrShapeMismatch indicates x and y slices of different length.
	ErrShapeMismatch = errors.New("pattern: x and y must have the same length")
	// ErrBackgroundCycle indicates a background chain that leads back to
	// the pattern itself.
	ErrBackgroundCycle = errors.New("pattern: background chain contains a cycle")
	// ErrInvalidFactor indicates a rebin factor below one.
	ErrInvalidFactor = errors.New("pattern: rebin factor must be >= 1")
)

// BackgroundRangeError reports a pattern whose x-domain does not intersect
// the domain it is combined with.
type BackgroundRangeError struct {
	Name string
}

func (e *BackgroundRangeError) Error() string {
	return fmt.Sprintf("pattern: background %q is outside the x-range of the pattern", e.Name)
}

// Unwrap returns [grid.ErrDomainMismatch].
func (e *BackgroundRangeError) Unwrap() error {
	return grid.ErrDomainMismatch
}

// rangeError converts a domain mismatch into a BackgroundRangeError naming other.
func rangeError(err error, other *Pattern) error {
	if errors.Is(err, grid.ErrDomainMismatch) {
		return &BackgroundRangeError{Name: other.name}
	}
	return err
}
