// Package recipe matches shaped crafting recipes against grids and models the
// consumption of ingredients when the crafted result is taken.
//
// What:
//
//   - Recipe is the contract every recipe variant satisfies: TryMatch (a pure
//     predicate that yields the output) and ApplyOnce (remove one application
//     worth of ingredients).
//   - Shaped is a fixed rows×cols ingredient layout compared positionally,
//     top-left aligned, with either a fixed output or a layout-derived one.
//   - Take reconciles "how many outputs were taken" with "how many times the
//     ingredients must be consumed" and returns the resulting grid, all or
//     nothing.
//   - Builder assembles Shaped recipes from character patterns.
//
// Results, not errors:
//
//   - No match is the ordinary negative result (ok == false).
//   - A single application that cannot proceed is reported as an
//     Application with Status CannotApply; it is never returned as an error.
//   - An inconsistent take (applied count != taken quantity) yields ok == false
//     and leaves no partially consumed grid behind.
//
// Errors (construction only):
//
//   - ErrBadShape, ErrNonRectangular, ErrEmptyLayout, ErrNoOutput,
//     ErrOutOfRange, ErrUnknownLink, ErrPatternWidth.
package recipe
