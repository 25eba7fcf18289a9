// Package manager keeps an ordered set of recipes and resolves a crafting
// grid against them: the first registered recipe that matches wins.
//
// A Manager is safe for concurrent use. Registration takes a write lock;
// Match, Take and MatchAll take read locks and operate on immutable grid
// snapshots, so independent grids can be resolved in parallel (MatchAll).
//
// Options:
//
//   - WithLogger: structured logger (log/slog) for match/take decisions.
//   - WithMetrics: prometheus counters created by NewMetrics.
//
// Errors:
//
//   - ErrNilRecipe, ErrDuplicateID from Register.
//   - ErrUnknownID from Get.
package manager
