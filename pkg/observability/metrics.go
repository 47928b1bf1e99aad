package observability

import (
	"github.com/aretw0/towers/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records session activity as Prometheus collectors.
type Metrics struct {
	Events   *prometheus.CounterVec
	Moves    *prometheus.CounterVec
	Sessions *prometheus.CounterVec
	Turns    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towers_events_total",
				Help: "Total number of session events by type",
			},
			[]string{"type"},
		),
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towers_moves_total",
				Help: "Total number of disk moves by source and destination peg",
			},
			[]string{"from", "to"},
		),
		Sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "towers_sessions_total",
				Help: "Total number of finished sessions by outcome",
			},
			[]string{"outcome"},
		),
		Turns: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "towers_session_turns",
				Help:    "Number of turns played per finished session",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.Events, m.Moves, m.Sessions, m.Turns} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(turn int, event domain.Event) {
			m.Events.WithLabelValues(string(event.Type)).Inc()
			if event.Type == domain.EventPlayerMovedDisk {
				m.Moves.WithLabelValues(event.From.String(), event.To.String()).Inc()
			}
		},
		OnFinish: func(turns int, event domain.Event) {
			m.Sessions.WithLabelValues(string(event.Type)).Inc()
			m.Turns.Observe(float64(turns))
		},
	}
}
