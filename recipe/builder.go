// SPDX-License-Identifier: MIT

package recipe

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/craftgrid/item"
)

// EmptyLink is the pattern character pre-linked to the empty sentinel.
const EmptyLink = ' '

// Builder assembles a Shaped recipe of a fixed rows×cols footprint.
//
// Cells are filled either directly (Set) or from character patterns (Row)
// through Link. Methods chain; the first error is remembered and reported by
// Build, so a chain never needs intermediate checks.
//
//	r, err := recipe.NewBuilder(2, 2).
//		Link('w', item.New("wood", 1)).
//		Row(0, "ww").
//		Row(1, "ww").
//		Result(item.New("planks", 4)).
//		Build()
type Builder struct {
	rows, cols int
	links      map[rune]item.Stack
	cells      []item.Stack
	result     item.Stack
	fn         OutputFunc
	err        error
}

// NewBuilder starts a builder for a rows×cols footprint. Non-positive
// dimensions surface as ErrBadShape from Build.
func NewBuilder(rows, cols int) *Builder {
	b := &Builder{
		rows:  rows,
		cols:  cols,
		links: map[rune]item.Stack{EmptyLink: item.Empty()},
	}
	if rows <= 0 || cols <= 0 {
		b.fail(fmt.Errorf("NewBuilder(%d,%d): %w", rows, cols, ErrBadShape))
		return b
	}
	b.cells = make([]item.Stack, rows*cols)

	return b
}

// fail records the first error.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Link associates ch with stack for subsequent Row calls.
func (b *Builder) Link(ch rune, stack item.Stack) *Builder {
	b.links[ch] = stack.Copy()
	return b
}

// Row fills row r from pattern, one linked character per column.
func (b *Builder) Row(r int, pattern string) *Builder {
	if b.err != nil {
		return b
	}
	if r < 0 || r >= b.rows {
		b.fail(fmt.Errorf("Builder.Row(%d): %w", r, ErrOutOfRange))
		return b
	}
	runes := []rune(pattern)
	if len(runes) != b.cols {
		b.fail(fmt.Errorf("Builder.Row(%d,%q): got %d columns, want %d: %w", r, pattern, len(runes), b.cols, ErrPatternWidth))
		return b
	}
	for c, ch := range runes {
		s, ok := b.links[ch]
		if !ok {
			b.fail(fmt.Errorf("Builder.Row(%d,%q): %q: %w", r, pattern, ch, ErrUnknownLink))
			return b
		}
		b.cells[r*b.cols+c] = s
	}

	return b
}

// Rows fills consecutive rows starting at row 0.
func (b *Builder) Rows(patterns ...string) *Builder {
	for r, p := range patterns {
		b.Row(r, p)
	}
	return b
}

// Set places stack at (r, c).
func (b *Builder) Set(r, c int, stack item.Stack) *Builder {
	if b.err != nil {
		return b
	}
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		b.fail(fmt.Errorf("Builder.Set(%d,%d): %w", r, c, ErrOutOfRange))
		return b
	}
	b.cells[r*b.cols+c] = stack.Copy()

	return b
}

// Result sets the fixed output stack.
func (b *Builder) Result(stack item.Stack) *Builder {
	b.result = stack.Copy()
	b.fn = nil
	return b
}

// ResultFunc sets a layout-derived output instead of a fixed one.
func (b *Builder) ResultFunc(fn OutputFunc) *Builder {
	b.fn = fn
	b.result = item.Empty()
	return b
}

// Duplicate returns an independent builder with the same links, cells,
// result and recorded error.
func (b *Builder) Duplicate() *Builder {
	n := &Builder{
		rows:   b.rows,
		cols:   b.cols,
		links:  make(map[rune]item.Stack, len(b.links)),
		result: b.result,
		fn:     b.fn,
		err:    b.err,
	}
	for k, v := range b.links {
		n.links[k] = v
	}
	if b.cells != nil {
		n.cells = make([]item.Stack, len(b.cells))
		copy(n.cells, b.cells)
	}

	return n
}

// Build validates the builder state and returns the recipe.
func (b *Builder) Build() (*Shaped, error) {
	if b.err != nil {
		return nil, b.err
	}
	layout := make([][]item.Stack, b.rows)
	for r := range layout {
		layout[r] = b.cells[r*b.cols : (r+1)*b.cols]
	}

	var (
		s   *Shaped
		err error
	)
	if b.fn != nil {
		s, err = NewShapedFunc(layout, b.fn)
	} else {
		s, err = NewShaped(layout, b.result)
	}
	if err != nil {
		return nil, fmt.Errorf("Builder.Build: %w", errors.Unwrap(err))
	}

	return s, nil
}
