// Package grid provides Grid, the persistent crafting-surface value that
// recipes are matched against.
//
// What:
//
//   - Grid holds a rectangular rows×cols matrix of item.Stack values together
//     with a flattened, row-major list view of the same cells.
//   - Empty cells always hold the item.Empty() sentinel, never a nil marker.
//   - Every "With" operation and RemoveStacks returns a brand-new Grid; a
//     Grid is never modified after construction and may be shared freely
//     between goroutines.
//
// Why:
//
//   - Matching and ingredient removal must never mutate caller-owned state:
//     the host decides whether a computed grid is written back.
//
// Complexity:
//
//   - New / FromMatrix / Matrix / WithMatrix / WithList: O(R×C) time and memory.
//   - At / Rows / Cols:                                 O(1).
//   - RemoveStacks(targets):                            O(T×R×C) time, O(R×C) memory.
//
// Errors:
//
//   - ErrBadShape: requested dimensions are not positive (NewEmpty).
//   - ErrOutOfRange: a (row, col) index lies outside the grid (At, With).
package grid
