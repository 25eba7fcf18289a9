// SPDX-License-Identifier: MIT

package recipefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/manager"
	"github.com/katalvlaran/craftgrid/recipe"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load decodes, validates and checks a book.
func Load(r io.Reader) (*Book, error) {
	var b Book
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("recipefile: decode: %w", err)
	}
	if err := validate.Struct(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := make(map[string]struct{}, len(b.Grids))
	for _, g := range b.Grids {
		if _, dup := seen[g.Name]; dup {
			return nil, fmt.Errorf("grid %q: %w", g.Name, ErrDuplicateGrid)
		}
		seen[g.Name] = struct{}{}
	}
	for i := range b.Recipes {
		if _, err := b.Recipes[i].Build(); err != nil {
			return nil, err
		}
	}

	return &b, nil
}

// LoadFile reads and loads the book at path.
func LoadFile(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipefile: %w", err)
	}
	b, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

// Build turns the spec into a shaped recipe through recipe.Builder.
func (rs RecipeSpec) Build() (*recipe.Shaped, error) {
	cols := utf8.RuneCountInString(rs.Pattern[0])
	b := recipe.NewBuilder(len(rs.Pattern), cols)
	for k, v := range rs.Key {
		ch, _ := utf8.DecodeRuneInString(k)
		b.Link(ch, v.Stack())
	}
	r, err := b.Rows(rs.Pattern...).Result(rs.Result.Stack()).Build()
	if err != nil {
		return nil, fmt.Errorf("recipefile: recipe %q: %w", rs.ID, err)
	}

	return r, nil
}

// Register builds every recipe and registers it on m in document order.
func (b *Book) Register(m *manager.Manager) error {
	for _, rs := range b.Recipes {
		r, err := rs.Build()
		if err != nil {
			return err
		}
		if _, err := m.Register(rs.ID, r); err != nil {
			return fmt.Errorf("recipefile: %w", err)
		}
	}
	return nil
}

// ContainerFunc returns a lookup over the book's container table. The first
// entry whose "from" stack is the same kind as the ingredient wins.
func (b *Book) ContainerFunc() recipe.ContainerFunc {
	if len(b.Containers) == 0 {
		return nil
	}
	type pair struct{ from, to item.Stack }
	table := make([]pair, len(b.Containers))
	for i, c := range b.Containers {
		table[i] = pair{from: c.From.Stack(), to: c.To.Stack()}
	}

	return func(s item.Stack) (item.Stack, bool) {
		for _, p := range table {
			if p.from.SameKind(s) {
				return p.to, true
			}
		}
		return item.Stack{}, false
	}
}

// GridNames returns grid names in document order.
func (b *Book) GridNames() []string {
	names := make([]string, len(b.Grids))
	for i, g := range b.Grids {
		names[i] = g.Name
	}
	return names
}

// Grid returns the named grid.
func (b *Book) Grid(name string) (*grid.Grid, error) {
	for _, g := range b.Grids {
		if g.Name == name {
			return g.Grid(), nil
		}
	}
	return nil, fmt.Errorf("grid %q: %w", name, ErrUnknownGrid)
}

// Grid converts the spec into a grid.Grid; jagged rows are padded.
func (gs GridSpec) Grid() *grid.Grid {
	m := make([][]item.Stack, len(gs.Rows))
	for r, row := range gs.Rows {
		m[r] = make([]item.Stack, len(row))
		for c, cell := range row {
			if cell != nil {
				m[r][c] = cell.Stack()
			}
		}
	}
	return grid.FromMatrix(m)
}

// EncodeGrid writes g as a one-grid book that Load reads back.
func EncodeGrid(w io.Writer, name string, g *grid.Grid) error {
	spec := GridSpec{Name: name, Rows: make([][]*StackSpec, g.Rows())}
	for r, row := range g.Matrix() {
		spec.Rows[r] = make([]*StackSpec, len(row))
		for c, s := range row {
			spec.Rows[r][c] = specOf(s)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Book{Grids: []GridSpec{spec}}); err != nil {
		return fmt.Errorf("recipefile: encode: %w", err)
	}

	return enc.Close()
}
