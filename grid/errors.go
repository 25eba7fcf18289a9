package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadShape indicates non-positive rows or columns were requested.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the grid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// gridErrorf wraps err with Grid method context and the offending index.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
