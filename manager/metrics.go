package manager

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	resultHit      = "hit"
	resultMiss     = "miss"
	resultApplied  = "applied"
	resultRejected = "rejected"
)

// Metrics holds the prometheus collectors a Manager reports to.
type Metrics struct {
	matches      *prometheus.CounterVec
	takes        *prometheus.CounterVec
	applications prometheus.Counter
}

// NewMetrics creates the manager collectors and registers them on reg.
// Nothing is registered globally; pass prometheus.DefaultRegisterer to opt in.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "craftgrid_matches_total",
			Help: "Grid resolutions by outcome (hit, miss).",
		}, []string{"result"}),
		takes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "craftgrid_takes_total",
			Help: "Result takes by outcome (applied, rejected).",
		}, []string{"result"}),
		applications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "craftgrid_applications_total",
			Help: "Recipe applications consumed by successful takes.",
		}),
	}
	for _, c := range []prometheus.Collector{m.matches, m.takes, m.applications} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeMatch(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.matches.WithLabelValues(resultHit).Inc()
		return
	}
	m.matches.WithLabelValues(resultMiss).Inc()
}

func (m *Metrics) observeTake(applications int, ok bool) {
	if m == nil {
		return
	}
	if !ok {
		m.takes.WithLabelValues(resultRejected).Inc()
		return
	}
	m.takes.WithLabelValues(resultApplied).Inc()
	m.applications.Add(float64(applications))
}
