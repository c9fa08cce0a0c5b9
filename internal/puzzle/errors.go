package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrDimensions    = errors.New("grid dimensions out of range")
	ErrRaggedRows    = errors.New("rows must all have the same length")
	ErrStartObstacle = errors.New("start cell may not be an obstacle")
)

// validateDimensions checks that a w×h grid fits the compile-time bounds.
func validateDimensions(w, h int) error {
	if w <= 0 || w > MaxWidth {
		return fmt.Errorf("%w: width %d must be in [1, %d]", ErrDimensions, w, MaxWidth)
	}
	if h <= 0 || h > MaxHeight {
		return fmt.Errorf("%w: height %d must be in [1, %d]", ErrDimensions, h, MaxHeight)
	}
	return nil
}
