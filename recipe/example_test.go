package recipe_test

import (
	"fmt"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/recipe"
)

// ExampleTake builds the plank recipe, matches it and takes the result
// twice worth of ingredients.
func ExampleTake() {
	r, _ := recipe.NewBuilder(2, 2).
		Link('w', item.New("wood", 1)).
		Rows("ww", "ww").
		Result(item.New("planks", 4)).
		Build()

	w := item.New("wood", 2)
	g := grid.FromMatrix([][]item.Stack{{w, w}, {w, w}})

	out, ok := r.TryMatch(g)
	fmt.Println("match:", ok, out)

	next, ok := recipe.Take(r, g, item.New("planks", 2), nil)
	fmt.Println("taken:", ok)
	fmt.Print(next)

	// Output:
	// match: true planks(4)
	// taken: true
	// [none, none]
	// [none, none]
}
