package manager

import "log/slog"

// Option configures a Manager before first use.
type Option func(*Manager)

// WithLogger sets the logger used for match and take decisions.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("manager: WithLogger(nil)")
	}
	return func(m *Manager) { m.log = l }
}

// WithMetrics attaches prometheus counters. Panics on nil.
func WithMetrics(mt *Metrics) Option {
	if mt == nil {
		panic("manager: WithMetrics(nil)")
	}
	return func(m *Manager) { m.metrics = mt }
}
