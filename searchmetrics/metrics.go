// Package searchmetrics exports Prometheus metrics for astar searches. It is
// attached to a search through the astar hook options and never touches the
// frontier directly.
package searchmetrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/waypoint/astar"
)

const namespace = "waypoint"

// Outcome label values of searches_total.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Metrics groups the search collectors registered on one registry.
type Metrics struct {
	Searches   *prometheus.CounterVec
	Expanded   prometheus.Counter
	Candidates *prometheus.CounterVec
	Expansions prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// It panics if any of them is already registered, like reg.MustRegister.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of searches by outcome",
		}, []string{"outcome"}),
		Expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expanded_total",
			Help:      "The total number of waypoints moved to the closed set",
		}),
		Candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "The total number of neighbor waypoints offered to the open set",
		}, []string{"result"}),
		Expansions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expansions",
			Help:      "Expansions per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	reg.MustRegister(m.Searches, m.Expanded, m.Candidates, m.Expansions)
	return m
}

// Options returns the hook options that feed the per-waypoint counters.
func (m *Metrics) Options() []astar.Option {
	accepted := m.Candidates.WithLabelValues("accepted")
	rejected := m.Candidates.WithLabelValues("rejected")

	return []astar.Option{
		astar.WithOnClose(func(*astar.Waypoint) { m.Expanded.Inc() }),
		astar.WithOnCandidate(func(_ *astar.Waypoint, ok bool) {
			if ok {
				accepted.Inc()
				return
			}
			rejected.Inc()
		}),
	}
}

// Observe records the outcome of a finished Search call.
func (m *Metrics) Observe(res *astar.Result, err error) {
	switch {
	case err == nil && res != nil && res.Found:
		m.Searches.WithLabelValues(OutcomeFound).Inc()
	case errors.Is(err, astar.ErrNoPath):
		m.Searches.WithLabelValues(OutcomeNoPath).Inc()
	default:
		m.Searches.WithLabelValues(OutcomeError).Inc()
	}
	if res != nil {
		m.Expansions.Observe(float64(res.Expanded))
	}
}
