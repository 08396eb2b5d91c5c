// Package metrics exposes Prometheus instrumentation and runtime memory
// snapshots for sequence generation runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SequenceMetrics holds the Prometheus collectors for generation runs.
type SequenceMetrics struct {
	termsGenerated *prometheus.CounterVec
	exhaustions    *prometheus.CounterVec
	runDuration    prometheus.Histogram
}

// NewSequenceMetrics creates and registers the collectors on the given
// registerer. Tests pass a fresh prometheus.NewRegistry() to avoid global
// duplicate registration.
func NewSequenceMetrics(reg prometheus.Registerer) *SequenceMetrics {
	factory := promauto.With(reg)
	return &SequenceMetrics{
		termsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fibext",
			Name:      "terms_generated_total",
			Help:      "Number of sequence terms emitted, by element width and overflow policy.",
		}, []string{"width", "policy"}),
		exhaustions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fibext",
			Name:      "sequence_exhausted_total",
			Help:      "Number of checked-policy sequences that reached overflow exhaustion.",
		}, []string{"width"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fibext",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of generation runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// AddTerms records n emitted terms for the given width and policy.
func (m *SequenceMetrics) AddTerms(width, policy string, n uint64) {
	m.termsGenerated.WithLabelValues(width, policy).Add(float64(n))
}

// ObserveExhaustion records one sequence exhaustion for the given width.
func (m *SequenceMetrics) ObserveExhaustion(width string) {
	m.exhaustions.WithLabelValues(width).Inc()
}

// ObserveRunDuration records the duration of a completed run.
func (m *SequenceMetrics) ObserveRunDuration(d time.Duration) {
	m.runDuration.Observe(d.Seconds())
}
