package recipefile

import "errors"

var (
	// ErrInvalid indicates a document that decoded but failed validation.
	ErrInvalid = errors.New("recipefile: invalid document")

	// ErrUnknownGrid indicates a grid name not present in the book.
	ErrUnknownGrid = errors.New("recipefile: unknown grid")

	// ErrDuplicateGrid indicates two grids sharing a name.
	ErrDuplicateGrid = errors.New("recipefile: duplicate grid name")
)
