package changelog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// Metrics counts recorded and failed change entries. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	recorded *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the change log collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		recorded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "changetrail",
			Name:      "entries_recorded_total",
			Help:      "Change entries persisted, by operation and kind.",
		}, []string{"operation", "kind"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "changetrail",
			Name:      "record_failures_total",
			Help:      "Change entries that could not be persisted and were dropped.",
		}, []string{"operation", "kind"}),
	}
}

func (m *Metrics) observeRecorded(op domain.Operation, kind domain.TargetType) {
	if m == nil {
		return
	}
	m.recorded.WithLabelValues(op.String(), kind.String()).Inc()
}

func (m *Metrics) observeFailure(op domain.Operation, kind domain.TargetType) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(op.String(), kind.String()).Inc()
}
