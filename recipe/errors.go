// SPDX-License-Identifier: MIT

package recipe

import (
	"errors"
	"fmt"
)

// Construction errors. Malformed recipes are programming errors on the caller
// side; they are reported once, at construction time.
var (
	// ErrBadShape indicates a layout with zero rows or zero columns.
	ErrBadShape = errors.New("recipe: layout must have at least one row and one column")

	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("recipe: all layout rows must have the same length")

	// ErrEmptyLayout indicates a layout without a single non-empty requirement.
	ErrEmptyLayout = errors.New("recipe: layout has no ingredients")

	// ErrNoOutput indicates a missing output stack or output function.
	ErrNoOutput = errors.New("recipe: output not set")

	// ErrOutOfRange indicates a (row, col) outside the recipe footprint.
	ErrOutOfRange = errors.New("recipe: index out of range")

	// ErrUnknownLink indicates a pattern character with no linked stack.
	ErrUnknownLink = errors.New("recipe: unknown pattern character")

	// ErrPatternWidth indicates a pattern row whose width differs from the builder's columns.
	ErrPatternWidth = errors.New("recipe: pattern row width mismatch")
)

// Reasons attached to a CannotApply Application. They describe why one
// application stopped; they are not returned as errors.
var (
	// ErrKindMismatch: the (possibly substituted) cell is not the required kind.
	ErrKindMismatch = errors.New("recipe: ingredient kind mismatch")

	// ErrInsufficient: the cell holds fewer items than required.
	ErrInsufficient = errors.New("recipe: insufficient ingredient quantity")

	// ErrGridTooSmall: the grid cannot hold the recipe footprint.
	ErrGridTooSmall = errors.New("recipe: grid smaller than recipe footprint")
)

// recipeErrorf prefixes err with the method name.
func recipeErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
