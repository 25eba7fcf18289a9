// SPDX-License-Identifier: MIT

package grid

import (
	"strings"

	"github.com/katalvlaran/craftgrid/item"
)

// Grid is an immutable rows×cols matrix of stacks plus its list view.
// cells is flat row-major storage of length rows*cols; list is the flattened
// view handed out by List. Both are private copies owned by the Grid.
type Grid struct {
	rows, cols int
	cells      []item.Stack
	list       []item.Stack
}

// New builds a Grid from a matrix and a list view, deep-copying both.
// Jagged or nil rows are padded with the empty sentinel up to the widest row;
// stacks holding no items are normalized to the sentinel.
// Complexity: O(R×C + len(list)).
func New(matrix [][]item.Stack, list []item.Stack) *Grid {
	g := fromMatrix(matrix)
	g.list = normalized(list)

	return g
}

// FromMatrix builds a Grid whose list view is the row-major traversal of matrix.
// Complexity: O(R×C).
func FromMatrix(matrix [][]item.Stack) *Grid {
	g := fromMatrix(matrix)
	g.list = normalized(g.cells)

	return g
}

// NewEmpty builds a rows×cols Grid filled with the empty sentinel.
// Returns ErrBadShape if rows or cols is not positive.
// Complexity: O(R×C).
func NewEmpty(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, gridErrorf("NewEmpty", rows, cols, ErrBadShape)
	}
	cells := make([]item.Stack, rows*cols)

	return fromCells(rows, cols, cells), nil
}

// fromMatrix copies matrix into flat storage, padding to the widest row.
func fromMatrix(matrix [][]item.Stack) *Grid {
	rows, cols := len(matrix), 0
	for _, row := range matrix {
		cols = max(cols, len(row))
	}
	cells := make([]item.Stack, rows*cols) // zero Stack == sentinel, padding is free
	for r, row := range matrix {
		for c, s := range row {
			cells[r*cols+c] = s.Normalize().Copy()
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}
}

// fromCells adopts flat storage (caller must not retain it) and derives the list.
func fromCells(rows, cols int, cells []item.Stack) *Grid {
	list := make([]item.Stack, len(cells))
	copy(list, cells)

	return &Grid{rows: rows, cols: cols, cells: cells, list: list}
}

// normalized returns a sentinel-normalized deep copy of stacks.
func normalized(stacks []item.Stack) []item.Stack {
	out := make([]item.Stack, len(stacks))
	for i, s := range stacks {
		out[i] = s.Normalize().Copy()
	}
	return out
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid) Cols() int {
	return g.cols
}

// indexOf maps (row, col) to the flat row-major index or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.cols + col, nil
}

// At returns the stack at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (item.Stack, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return item.Stack{}, err
	}

	return g.cells[idx], nil
}

// With returns a new Grid with the stack at (row, col) replaced by s.
// The list view of the result is re-derived from its matrix.
// Complexity: O(R×C).
func (g *Grid) With(row, col int, s item.Stack) (*Grid, error) {
	idx, err := g.indexOf("With", row, col)
	if err != nil {
		return nil, err
	}
	cells := g.cloneCells()
	cells[idx] = s.Normalize().Copy()

	return fromCells(g.rows, g.cols, cells), nil
}

// Matrix returns a deep copy of the matrix view. Callers may freely mutate the
// result; the Grid is unaffected.
// Complexity: O(R×C).
func (g *Grid) Matrix() [][]item.Stack {
	out := make([][]item.Stack, g.rows)
	for r := range out {
		out[r] = make([]item.Stack, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// List returns a copy of the flattened list view (row-major order).
// Complexity: O(len(list)).
func (g *Grid) List() []item.Stack {
	out := make([]item.Stack, len(g.list))
	copy(out, g.list)

	return out
}

// WithMatrix returns a new Grid built from matrix; the list view is derived
// from the matrix in row-major order.
// Complexity: O(R×C).
func (g *Grid) WithMatrix(matrix [][]item.Stack) *Grid {
	return FromMatrix(matrix)
}

// WithList returns a new Grid whose list view is list. The matrix keeps g's
// shape: cells are overwritten from list in row-major order until list is
// exhausted; remaining cells keep their current contents.
// Complexity: O(R×C + len(list)).
func (g *Grid) WithList(list []item.Stack) *Grid {
	cells := g.cloneCells()
	for i := 0; i < len(cells) && i < len(list); i++ {
		cells[i] = list[i].Normalize().Copy()
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells, list: normalized(list)}
}

// Count returns the total quantity of stacks same-kind as s across all cells.
// Complexity: O(R×C).
func (g *Grid) Count(s item.Stack) int {
	total := 0
	for _, c := range g.cells {
		if !c.IsEmpty() && c.SameKind(s) {
			total += c.Quantity()
		}
	}
	return total
}

// IsEmpty reports whether every cell holds the sentinel.
func (g *Grid) IsEmpty() bool {
	for _, c := range g.cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Equal reports whether g and o have the same shape, cells and list view.
// Complexity: O(R×C + len(list)).
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols || len(g.list) != len(o.list) {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	for i := range g.list {
		if !g.list[i].Equal(o.list[i]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[wood(1), none]\n".
// Complexity: O(R×C).
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.WriteByte('[')
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.cells[r*g.cols+c].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// cloneCells returns a private copy of the flat storage. Stacks are values
// with immutable data, so a slice copy is a deep copy.
func (g *Grid) cloneCells() []item.Stack {
	cells := make([]item.Stack, len(g.cells))
	copy(cells, g.cells)
	return cells
}
