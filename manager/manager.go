// SPDX-License-Identifier: MIT

package manager

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/craftgrid/grid"
	"github.com/katalvlaran/craftgrid/item"
	"github.com/katalvlaran/craftgrid/recipe"
)

// Manager is an ordered, concurrency-safe recipe registry.
type Manager struct {
	mu      sync.RWMutex
	entries []entry
	byID    map[string]int

	log     *slog.Logger
	metrics *Metrics
}

type entry struct {
	id     string
	recipe recipe.Recipe
}

// Match is a successful resolution of a grid.
type Match struct {
	ID     string
	Recipe recipe.Recipe
	Output item.Stack
}

// New returns an empty Manager configured by opts.
func New(opts ...Option) *Manager {
	m := &Manager{
		byID: make(map[string]int),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Register appends r to the registry and returns its id. An empty id is
// replaced by a generated UUID. Registration order is match priority.
func (m *Manager) Register(id string, r recipe.Recipe) (string, error) {
	if r == nil {
		return "", fmt.Errorf("Register(%q): %w", id, ErrNilRecipe)
	}
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.byID[id]; dup {
		return "", fmt.Errorf("Register(%q): %w", id, ErrDuplicateID)
	}
	m.byID[id] = len(m.entries)
	m.entries = append(m.entries, entry{id: id, recipe: r})
	m.log.Debug("recipe registered", "id", id, "priority", len(m.entries)-1)

	return id, nil
}

// Len returns the number of registered recipes.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// IDs returns registered ids in priority order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, len(m.entries))
	for i, e := range m.entries {
		ids[i] = e.id
	}
	return ids
}

// Get returns the recipe registered under id.
func (m *Manager) Get(id string) (recipe.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", id, ErrUnknownID)
	}
	return m.entries[i].recipe, nil
}

// snapshot copies the entry list so scans run without holding the lock.
func (m *Manager) snapshot() []entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Match returns the first registered recipe that matches g.
// Complexity: O(N×R×C) for N recipes.
func (m *Manager) Match(g *grid.Grid) (Match, bool) {
	for _, e := range m.snapshot() {
		if out, ok := e.recipe.TryMatch(g); ok {
			m.log.Debug("recipe matched", "id", e.id, "output", out.String())
			m.metrics.observeMatch(true)
			return Match{ID: e.id, Recipe: e.recipe, Output: out}, true
		}
	}
	m.log.Debug("no recipe matched")
	m.metrics.observeMatch(false)

	return Match{}, false
}

// Take resolves a result taken from the output slot. Recipes are tried in
// priority order; a recipe is considered only if it matches g and its output
// is the same kind as taken. The first recipe whose take reconciles wins and
// its resulting grid is returned. Otherwise (nil, Match{}, false).
func (m *Manager) Take(g *grid.Grid, taken item.Stack, containers recipe.ContainerFunc) (*grid.Grid, Match, bool) {
	for _, e := range m.snapshot() {
		out, ok := e.recipe.TryMatch(g)
		if !ok || !out.SameKind(taken) {
			continue
		}
		next, ok := recipe.Take(e.recipe, g, taken, containers)
		if !ok {
			m.log.Debug("take not reconciled", "id", e.id, "taken", taken.String(), "output", out.String())
			continue
		}
		m.log.Info("result taken", "id", e.id, "taken", taken.String(), "applications", taken.Quantity())
		m.metrics.observeTake(taken.Quantity(), true)
		return next, Match{ID: e.id, Recipe: e.recipe, Output: out}, true
	}
	m.log.Warn("take rejected", "taken", taken.String())
	m.metrics.observeTake(0, false)

	return nil, Match{}, false
}
