package metrics

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "backend",
		Name:      "calls_total",
		Help:      "Count of backend gateway calls.",
	}, []string{"backend", "operation", "network", "status"})
	backendCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tangleinsight",
		Subsystem: "backend",
		Name:      "call_duration_seconds",
		Help:      "Duration of backend gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "operation", "network", "status"})
	backendTooManyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "backend",
		Name:      "too_many_total",
		Help:      "Count of lookups a backend reported as exceeding its result window.",
	}, []string{"backend", "network"})
)

// Backend tracks metrics for calls made through one backend gateway.
type Backend struct {
	backend string
	network model.Network
}

// NewBackend constructs a Backend collector for the named backend kind.
func NewBackend(backend string, network model.Network) *Backend {
	if backend == "" {
		backend = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Backend{backend: backend, network: network}
}

// Observe records a backend call outcome and duration.
func (m Backend) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	backendCallsTotal.WithLabelValues(m.backend, operation, string(m.network), status).Inc()
	backendCallDuration.WithLabelValues(m.backend, operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveTooMany counts a lookup truncated by the backend's window.
func (m Backend) ObserveTooMany() {
	backendTooManyTotal.WithLabelValues(m.backend, string(m.network)).Inc()
}
