package recipe

import (
	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
)

// Recipe is implemented by every recipe variant.
type Recipe interface {
	// TryMatch reports whether the recipe matches g and, if so, the output
	// produced by one application. It never modifies g.
	TryMatch(g *grid.Grid) (item.Stack, bool)

	// ApplyOnce removes one application worth of ingredients from g.
	ApplyOnce(g *grid.Grid, containers ContainerFunc) Application
}

// ContainerFunc returns the remnant an ingredient leaves behind (an emptied
// bottle for a water bottle), or ok == false when there is none. A nil
// ContainerFunc means no ingredient leaves a remnant.
type ContainerFunc func(item.Stack) (remnant item.Stack, ok bool)

// lookup applies f, treating nil and empty remnants as "no remnant".
func (f ContainerFunc) lookup(s item.Stack) (item.Stack, bool) {
	if f == nil {
		return item.Stack{}, false
	}
	r, ok := f(s)
	if !ok || r.Kind() == item.None {
		return item.Stack{}, false
	}
	return r, true
}

// Status tags the outcome of a single application.
type Status uint8

const (
	// Applied means the ingredients were removed; Application.Grid holds the result.
	Applied Status = iota
	// CannotApply means the grid cannot supply one more application.
	CannotApply
)

// String returns "applied" or "cannot-apply".
func (s Status) String() string {
	if s == Applied {
		return "applied"
	}
	return "cannot-apply"
}

// Application is the result of ApplyOnce.
type Application struct {
	Status Status
	// Grid is the grid after one application; nil unless Status == Applied.
	Grid *grid.Grid
	// Row and Col locate the cell that stopped the application (CannotApply only).
	Row, Col int
	// Reason is ErrKindMismatch, ErrInsufficient or ErrGridTooSmall (CannotApply only).
	Reason error
}

// Applied reports whether the application succeeded.
func (a Application) Applied() bool {
	return a.Status == Applied
}

// cannotApply builds a CannotApply Application for cell (r, c).
func cannotApply(r, c int, reason error) Application {
	return Application{Status: CannotApply, Row: r, Col: c, Reason: reason}
}
