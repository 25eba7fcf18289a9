package recipe

import (
	"fmt"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
)

// OutputFunc derives the output of a general shaped recipe from the grid's
// matrix view at match time. It receives a copy it may keep.
type OutputFunc func(layout [][]item.Stack) item.Stack

// Shaped is a fixed rows×cols ingredient layout. The empty sentinel at a cell
// means "no requirement" (the grid cell must be empty too). Dimensions are
// fixed at construction; a Shaped value is immutable and safe for concurrent use.
type Shaped struct {
	rows, cols int
	cells      []item.Stack // row-major requirements, len == rows*cols
	output     item.Stack   // fixed output (single-output variant)
	outputFn   OutputFunc   // layout-derived output (general variant); nil otherwise
}

var _ Recipe = (*Shaped)(nil)

// NewShaped builds a single-output shaped recipe.
// Returns ErrBadShape, ErrNonRectangular, ErrEmptyLayout or ErrNoOutput.
// Complexity: O(R×C).
func NewShaped(layout [][]item.Stack, output item.Stack) (*Shaped, error) {
	if output.IsEmpty() {
		return nil, recipeErrorf("NewShaped", ErrNoOutput)
	}
	s, err := newShaped("NewShaped", layout)
	if err != nil {
		return nil, err
	}
	s.output = output.Copy()

	return s, nil
}

// NewShapedFunc builds a general shaped recipe whose output is computed from
// the matched grid by fn.
// Returns ErrBadShape, ErrNonRectangular, ErrEmptyLayout or ErrNoOutput.
// Complexity: O(R×C).
func NewShapedFunc(layout [][]item.Stack, fn OutputFunc) (*Shaped, error) {
	if fn == nil {
		return nil, recipeErrorf("NewShapedFunc", ErrNoOutput)
	}
	s, err := newShaped("NewShapedFunc", layout)
	if err != nil {
		return nil, err
	}
	s.outputFn = fn

	return s, nil
}

// newShaped validates layout and copies it into flat row-major storage.
func newShaped(method string, layout [][]item.Stack) (*Shaped, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, recipeErrorf(method, ErrBadShape)
	}
	rows, cols := len(layout), len(layout[0])
	cells := make([]item.Stack, 0, rows*cols)
	ingredients := 0
	for _, row := range layout {
		if len(row) != cols {
			return nil, recipeErrorf(method, ErrNonRectangular)
		}
		for _, s := range row {
			s = s.Normalize().Copy()
			if !s.IsEmpty() {
				ingredients++
			}
			cells = append(cells, s)
		}
	}
	// A footprint with nothing to consume would apply indefinitely.
	if ingredients == 0 {
		return nil, recipeErrorf(method, ErrEmptyLayout)
	}

	return &Shaped{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows in the recipe footprint.
func (s *Shaped) Rows() int { return s.rows }

// Cols returns the number of columns in the recipe footprint.
func (s *Shaped) Cols() int { return s.cols }

// At returns the requirement at (r, c).
func (s *Shaped) At(r, c int) (item.Stack, error) {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return item.Stack{}, fmt.Errorf("Shaped.At(%d,%d): %w", r, c, ErrOutOfRange)
	}
	return s.cells[r*s.cols+c], nil
}

// Output returns the fixed output and true for single-output recipes, or the
// sentinel and false for layout-derived ones.
func (s *Shaped) Output() (item.Stack, bool) {
	if s.outputFn != nil {
		return item.Empty(), false
	}
	return s.output, true
}

// Matches reports whether stack satisfies the requirement at (r, c), ignoring
// quantity. An empty stack matches only an empty requirement.
// Out-of-footprint positions never match.
func (s *Shaped) Matches(stack item.Stack, r, c int) bool {
	need, err := s.At(r, c)
	if err != nil {
		return false
	}
	if stack.IsEmpty() {
		return need.IsEmpty()
	}

	return need.SameKind(stack)
}

// TryMatch compares the recipe footprint against the top-left corner of g.
// It fails fast when g has no rows or fewer rows/columns than the recipe.
// Complexity: O(R×C) for the grid copy plus O(r×c) comparisons.
func (s *Shaped) TryMatch(g *grid.Grid) (item.Stack, bool) {
	if g == nil || g.Rows() < 1 || g.Rows() < s.rows || g.Cols() < s.cols {
		return item.Stack{}, false
	}
	layout := g.Matrix()
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if !s.Matches(layout[r][c], r, c) {
				return item.Stack{}, false
			}
		}
	}
	if s.outputFn != nil {
		return s.outputFn(layout), true
	}

	return s.output, true
}

// ApplyOnce removes one application of ingredients from g.
//
// For each footprint cell, if containers yields a remnant for the cell's
// stack, the remnant (carrying the cell's quantity) stands in for the cell.
// The cell must then be same-kind as the requirement and hold at least the
// required quantity; the required quantity is subtracted and the result is
// written back. Any failing cell yields CannotApply and g is untouched.
// Complexity: O(R×C).
func (s *Shaped) ApplyOnce(g *grid.Grid, containers ContainerFunc) Application {
	if g == nil || g.Rows() < s.rows || g.Cols() < s.cols {
		return cannotApply(0, 0, ErrGridTooSmall)
	}
	layout := g.Matrix()
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			need := s.cells[r*s.cols+c]
			have := layout[r][c]
			if remnant, ok := containers.lookup(have); ok {
				have = remnant.WithQuantity(have.Quantity())
			}
			if !need.SameKind(have) {
				return cannotApply(r, c, ErrKindMismatch)
			}
			if have.Quantity() < need.Quantity() {
				return cannotApply(r, c, ErrInsufficient)
			}
			layout[r][c] = have.WithQuantityChange(-need.Quantity())
		}
	}

	return Application{Status: Applied, Grid: g.WithMatrix(layout)}
}

// OnResultTaken reconciles a taken result with the ingredients in g.
// See Take.
func (s *Shaped) OnResultTaken(g *grid.Grid, taken item.Stack, containers ContainerFunc) (*grid.Grid, bool) {
	return Take(s, g, taken, containers)
}

// Layout returns a copy of the requirement matrix.
func (s *Shaped) Layout() [][]item.Stack {
	out := make([][]item.Stack, s.rows)
	for r := range out {
		out[r] = make([]item.Stack, s.cols)
		copy(out[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return out
}
