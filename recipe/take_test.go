package recipe_test

import (
	"testing"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/recipe"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// ApplyOnce
//----------------------------------------------------------------------------//

func TestApplyOnceRemovesOneApplication(t *testing.T) {
	g := woodGrid(3)
	app := plankRecipe(t).ApplyOnce(g, nil)

	require.True(t, app.Applied())
	require.Equal(t, recipe.Applied, app.Status)
	require.Equal(t, 8, app.Grid.Count(wood))
	require.Equal(t, 12, g.Count(wood), "input grid must be unchanged")
}

func TestApplyOnceCannotApply(t *testing.T) {
	r := plankRecipe(t)

	cases := []struct {
		name     string
		g        *grid.Grid
		row, col int
		reason   error
	}{
		{"KindMismatch", grid.FromMatrix([][]item.Stack{{wood, wood}, {stone, wood}}), 1, 0, recipe.ErrKindMismatch},
		{"EmptyCell", grid.FromMatrix([][]item.Stack{{wood, none}, {wood, wood}}), 0, 1, recipe.ErrKindMismatch},
		{"GridTooSmall", grid.FromMatrix([][]item.Stack{{wood, wood}}), 0, 0, recipe.ErrGridTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := r.ApplyOnce(tc.g, nil)
			require.False(t, app.Applied())
			require.Equal(t, recipe.CannotApply, app.Status)
			require.Nil(t, app.Grid)
			require.Equal(t, tc.row, app.Row)
			require.Equal(t, tc.col, app.Col)
			require.ErrorIs(t, app.Reason, tc.reason)
		})
	}
}

func TestApplyOnceInsufficient(t *testing.T) {
	r, err := recipe.NewShaped([][]item.Stack{{item.New("iron", 3)}}, item.New("bucket", 1))
	require.NoError(t, err)

	app := r.ApplyOnce(grid.FromMatrix([][]item.Stack{{item.New("iron", 2)}}), nil)
	require.Equal(t, recipe.CannotApply, app.Status)
	require.ErrorIs(t, app.Reason, recipe.ErrInsufficient)

	app = r.ApplyOnce(grid.FromMatrix([][]item.Stack{{item.New("iron", 5)}}), nil)
	require.True(t, app.Applied())
	require.Equal(t, 2, app.Grid.Count(item.New("iron", 1)))
}

// TestApplyOnceContainerSubstitution: the remnant stands in for the cell,
// keeping the cell's quantity, and is what remains after consumption.
func TestApplyOnceContainerSubstitution(t *testing.T) {
	water := item.New("water_bottle", 2)
	glass := item.New("glass_bottle", 1)
	containers := recipe.ContainerFunc(func(s item.Stack) (item.Stack, bool) {
		if s.Kind() == "water_bottle" {
			return glass, true
		}
		return item.Stack{}, false
	})

	r, err := recipe.NewShaped([][]item.Stack{{glass}}, item.New("mud", 1))
	require.NoError(t, err)

	g := grid.FromMatrix([][]item.Stack{{water}})
	app := r.ApplyOnce(g, containers)
	require.True(t, app.Applied())
	cell, _ := app.Grid.At(0, 0)
	require.True(t, cell.Equal(item.New("glass_bottle", 1)))

	// Without the lookup the water bottle is not what the recipe requires.
	app = r.ApplyOnce(g, nil)
	require.ErrorIs(t, app.Reason, recipe.ErrKindMismatch)

	// Empty remnants are ignored.
	app = r.ApplyOnce(g, func(item.Stack) (item.Stack, bool) { return item.Empty(), true })
	require.ErrorIs(t, app.Reason, recipe.ErrKindMismatch)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "applied", recipe.Applied.String())
	require.Equal(t, "cannot-apply", recipe.CannotApply.String())
}

//----------------------------------------------------------------------------//
// Take / OnResultTaken
//----------------------------------------------------------------------------//

// TestTakeSingleApplication consumes every wood(1) cell exactly once.
func TestTakeSingleApplication(t *testing.T) {
	next, ok := plankRecipe(t).OnResultTaken(woodGrid(1), item.New("planks", 1), nil)
	require.True(t, ok)
	require.True(t, next.IsEmpty())
}

// TestTakeTwoApplications loops ApplyOnce twice on wood(2) cells.
func TestTakeTwoApplications(t *testing.T) {
	next, ok := recipe.Take(plankRecipe(t), woodGrid(2), item.New("planks", 2), nil)
	require.True(t, ok)
	require.True(t, next.IsEmpty())
	for _, s := range next.List() {
		require.True(t, s.Equal(none))
	}
}

// TestTakeMoreThanOutput: a taken quantity above the output quantity is
// rejected for any grid, here planks(8) against a planks(4) recipe.
func TestTakeMoreThanOutput(t *testing.T) {
	r := plankRecipe(t)
	for _, n := range []int{1, 2, 8, 64} {
		_, ok := r.OnResultTaken(woodGrid(n), item.New("planks", 8), nil)
		require.False(t, ok, "wood(%d)", n)
	}
}

// TestTakeInconsistentCount: planks(3) cannot be reconciled with a grid that
// supports a single application.
func TestTakeInconsistentCount(t *testing.T) {
	g := woodGrid(1)
	next, ok := plankRecipe(t).OnResultTaken(g, item.New("planks", 3), nil)
	require.False(t, ok)
	require.Nil(t, next)
	require.Equal(t, 4, g.Count(wood), "grid untouched on failure")
}

// TestTakeTooManyApplications: the grid supports more applications than were
// taken, which is also inconsistent.
func TestTakeTooManyApplications(t *testing.T) {
	_, ok := plankRecipe(t).OnResultTaken(woodGrid(5), item.New("planks", 2), nil)
	require.False(t, ok)
}

func TestTakeNoMatch(t *testing.T) {
	g := grid.FromMatrix([][]item.Stack{{stone, stone}, {stone, stone}})
	_, ok := plankRecipe(t).OnResultTaken(g, item.New("planks", 1), nil)
	require.False(t, ok)
}

// countingRecipe wraps a Shaped recipe and counts ApplyOnce calls.
type countingRecipe struct {
	*recipe.Shaped
	calls, applied int
}

func (c *countingRecipe) ApplyOnce(g *grid.Grid, f recipe.ContainerFunc) recipe.Application {
	c.calls++
	app := c.Shaped.ApplyOnce(g, f)
	if app.Applied() {
		c.applied++
	}
	return app
}

// TestTakeLoopsUntilCannotApply checks the controller drives any Recipe and
// stops at the first CannotApply.
func TestTakeLoopsUntilCannotApply(t *testing.T) {
	c := &countingRecipe{Shaped: plankRecipe(t)}
	next, ok := recipe.Take(c, woodGrid(2), item.New("planks", 2), nil)
	require.True(t, ok)
	require.True(t, next.IsEmpty())
	require.Equal(t, 2, c.applied)
	require.Equal(t, 3, c.calls)
}
