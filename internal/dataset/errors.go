package dataset

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmpty        = errors.New("dataset has no examples")
	ErrInvalidLabel = errors.New("label must be 0 or 1")
	ErrUnknownGate  = errors.New("unknown gate")
	ErrNotFinite    = errors.New("input must be finite")
)

// DimensionMismatchError reports a shape disagreement between inputs,
// labels or parameters.
type DimensionMismatchError struct {
	What string // What was measured (e.g., "input width", "label count")
	Want int    // Expected size
	Got  int    // Actual size
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s: want %d, got %d", e.What, e.Want, e.Got)
}
