package manager

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/craftgrid/grid"
)

// Result is the resolution of one grid in a MatchAll batch.
type Result struct {
	Index int
	Match Match
	OK    bool
}

// MatchAll resolves every grid concurrently, at most limit at a time
// (limit <= 0 means no limit). Results are returned in input order.
// Grids are immutable, so workers share no mutable state. The only error is
// ctx's, when it is cancelled before all grids are resolved.
func (m *Manager) MatchAll(ctx context.Context, grids []*grid.Grid, limit int) ([]Result, error) {
	results := make([]Result, len(grids))
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, g := range grids {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			match, ok := m.Match(g)
			results[i] = Result{Index: i, Match: match, OK: ok}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
