package item

import "errors"

var (
	// ErrBadStack indicates a textual stack ("kind[:quantity]") could not be parsed.
	ErrBadStack = errors.New("item: malformed stack")

	// ErrNegativeQuantity indicates a quantity below zero at an input boundary.
	ErrNegativeQuantity = errors.New("item: negative quantity")
)
