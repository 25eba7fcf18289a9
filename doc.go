// Package craftgrid resolves shaped crafting recipes against a rectangular
// grid of item stacks: it decides whether a known recipe matches, computes
// the output, and consumes ingredients when results are taken, without ever
// mutating caller-owned state.
//
// 🚀 What is in the box?
//
//   - Stack values: immutable item + quantity + durability + keyed data
//   - Crafting grids: persistent matrix and list views over the same cells
//   - Shaped recipes: fixed layouts, single or layout-derived output
//   - Take reconciliation: repeated application until the taken count is met
//   - Container remnants: an emptied bottle stays behind where a full one was
//
// Everything is organized under these packages:
//
//	item/        Stack, Kind and the empty sentinel
//	grid/        Grid (matrix/list views) and greedy RemoveStacks
//	recipe/      Shaped, Builder, ApplyOnce and Take
//	manager/     ordered recipe registry, batch matching, prometheus counters
//	recipefile/  YAML recipe books and grids
//	cli/         the craftgrid command (cmd/craftgrid)
//
// Quick ASCII example, a 2×2 planks recipe against a 3×3 bench:
//
//	recipe      grid
//	w w         w w .
//	w w         w w .
//	            . . .
//
// Only the top-left corner of the grid is compared, so the recipe matches.
//
//	go get github.com/katalvlaran/craftgrid
package craftgrid
