package recipe_test

import (
	"testing"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/recipe"
	"github.com/stretchr/testify/require"
)

var (
	wood   = item.New("wood", 1)
	stone  = item.New("stone", 1)
	planks = item.New("planks", 4)
	none   = item.Empty()
)

// plankRecipe is the 2×2 all-wood recipe yielding planks(4).
func plankRecipe(t *testing.T) *recipe.Shaped {
	t.Helper()
	r, err := recipe.NewShaped([][]item.Stack{
		{wood, wood},
		{wood, wood},
	}, planks)
	require.NoError(t, err)
	return r
}

// woodGrid is a 2×2 grid of wood(n) cells.
func woodGrid(n int) *grid.Grid {
	w := item.New("wood", n)
	return grid.FromMatrix([][]item.Stack{{w, w}, {w, w}})
}
