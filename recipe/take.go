package recipe

import (
	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
)

// Take determines how many whole applications of r correspond to the taken
// stack and returns g with that many applications of ingredients removed.
//
// Protocol:
//  1. r must still match g (re-checked on every call).
//  2. If the output quantity is smaller than taken's quantity, nothing is consumed.
//  3. ApplyOnce is repeated against the previous result until it reports
//     CannotApply, counting successes.
//  4. The result is returned only if that count equals taken's quantity.
//
// Any other outcome returns (nil, false); g itself is never modified, so a
// failed take leaves nothing half-consumed.
// Complexity: O(k×R×C) where k = taken.Quantity()+1.
func Take(r Recipe, g *grid.Grid, taken item.Stack, containers ContainerFunc) (*grid.Grid, bool) {
	out, ok := r.TryMatch(g)
	if !ok {
		return nil, false
	}
	want := taken.Quantity()
	if out.Quantity() < want {
		return nil, false
	}

	done, next := 0, g
	for done <= want {
		app := r.ApplyOnce(next, containers)
		if !app.Applied() {
			break
		}
		next = app.Grid
		done++
	}
	// done > want is already a mismatch; stopping there bounds the loop.
	if done != want {
		return nil, false
	}

	return next, true
}
