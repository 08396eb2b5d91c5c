package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks HTTP-level instrumentation for the metrics server and
// owns the handler that renders the whole registry in Prometheus text
// format. The sequence-level collectors live in internal/metrics and
// share the same registry.
type Metrics struct {
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	handler        http.Handler
}

// NewMetrics registers the HTTP collectors plus the Go runtime and
// process collectors on reg. Callers pass a fresh registry per server,
// so registration never collides with a previous instance.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)
	return &Metrics{
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "fibext",
			Name:      "active_requests",
			Help:      "Number of HTTP requests currently being served.",
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fibext",
			Name:      "requests_total",
			Help:      "Total HTTP requests served, by method and path.",
		}, []string{"method", "path"}),
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		}),
	}
}

// IncrementActiveRequests marks one request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks one in-flight request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest records a completed request for the given method and path.
func (m *Metrics) CountRequest(method, path string) {
	m.requestsTotal.WithLabelValues(method, path).Inc()
}

// WritePrometheus renders every collector registered on the server's
// registry in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
