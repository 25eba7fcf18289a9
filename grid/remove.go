package grid

import "github.com/katalvlaran/craftgrid/item"

// RemoveStacks removes each target's quantity from the grid and returns the
// per-target leftovers that could not be removed together with the new Grid.
//
// Policy (greedy, single pass, first fit):
//   - Targets are processed in order; empty or non-positive targets are skipped.
//   - For each target, cells are scanned row-major. Every cell same-kind as the
//     target gives up items until either the cell empties (it becomes the
//     sentinel) or the target is satisfied.
//   - There is no backtracking: a cell drained for one target is not restored
//     even if a later target could have used it better.
//   - Fully satisfied targets are omitted from leftovers.
//
// The receiver is not modified.
// Complexity: O(T×R×C) time, O(R×C + T) memory.
func (g *Grid) RemoveStacks(targets ...item.Stack) ([]item.Stack, *Grid) {
	cells := g.cloneCells()
	leftovers := make([]item.Stack, 0, len(targets))

	for _, target := range targets {
		if target.IsEmpty() {
			continue
		}
		remaining := target.Copy()
		for i := 0; i < len(cells) && remaining.Quantity() > 0; i++ {
			cell := cells[i]
			if cell.IsEmpty() || !cell.SameKind(remaining) {
				continue
			}
			n := min(cell.Quantity(), remaining.Quantity())
			cells[i] = cell.WithQuantityChange(-n).Normalize()
			remaining = remaining.WithQuantityChange(-n)
		}
		if remaining.Quantity() > 0 {
			leftovers = append(leftovers, remaining)
		}
	}

	return leftovers, fromCells(g.rows, g.cols, cells)
}
