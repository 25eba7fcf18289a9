package manager

import "errors"

var (
	// ErrNilRecipe indicates Register was called with a nil recipe.
	ErrNilRecipe = errors.New("manager: recipe is nil")

	// ErrDuplicateID indicates a recipe id is already registered.
	ErrDuplicateID = errors.New("manager: duplicate recipe id")

	// ErrUnknownID indicates a lookup for an id that was never registered.
	ErrUnknownID = errors.New("manager: unknown recipe id")
)
