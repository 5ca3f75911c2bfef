package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the trace counters.
type Metrics struct {
	NodeVisits          *prometheus.CounterVec
	TransitionsRejected prometheus.Counter
	Resets              prometheus.Counter
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "failtrace_node_visits_total",
				Help: "Total number of node visits",
			},
			[]string{"node_id", "kind"},
		),
		TransitionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "failtrace_transitions_rejected_total",
			Help: "Advance requests whose target was not an edge of the current node",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "failtrace_resets_total",
			Help: "Total number of session resets",
		}),
	}

	for _, c := range []prometheus.Collector{m.NodeVisits, m.TransitionsRejected, m.Resets} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks records every lifecycle event in the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(e.NodeID, string(e.Kind)).Inc()
		},
		OnRejected: func(ctx context.Context, e *domain.RejectEvent) {
			m.TransitionsRejected.Inc()
		},
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			m.Resets.Inc()
		},
	}
}

// WriteTextfile dumps everything gathered by g to path in the text exposition format.
// The file is written atomically, so a node-exporter textfile collector never reads a partial dump.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
