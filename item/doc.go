// Package item defines Stack, the immutable item snapshot that crafting grids
// and recipes are built from.
//
// What:
//
//   - Stack is a value: kind + quantity + durability + keyed auxiliary data.
//   - The zero Stack is the empty sentinel (kind None, quantity 0); Empty()
//     returns it. Grids never hold a nil marker, only this sentinel.
//   - Every transformation (WithQuantity, WithQuantityChange, Copy, ...)
//     returns a new Stack. Nothing is mutated in place.
//
// Equality:
//
//   - SameKind compares kind, durability and data, ignoring quantity.
//   - Equal additionally compares quantity.
//   - A quantity-0 stack is equivalent to the sentinel for matching purposes
//     (IsEmpty reports true, Normalize collapses it).
//
// Errors:
//
//   - ErrBadStack: textual stack form could not be parsed.
//   - ErrNegativeQuantity: a parsed or decoded quantity was below zero.
package item
