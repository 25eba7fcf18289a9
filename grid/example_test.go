package grid_test

import (
	"fmt"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
)

// ExampleGrid_RemoveStacks shows the greedy row-major removal: five wood are
// requested, four are present, so one is reported as leftover.
func ExampleGrid_RemoveStacks() {
	g := grid.FromMatrix([][]item.Stack{
		{item.New("wood", 3), item.Empty()},
		{item.New("stone", 2), item.New("wood", 1)},
	})

	left, next := g.RemoveStacks(item.New("wood", 5))
	fmt.Println("leftovers:", left)
	fmt.Print(next)

	// Output:
	// leftovers: [wood(1)]
	// [none, none]
	// [stone(2), none]
}
