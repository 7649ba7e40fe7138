package metrics

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "explorer",
		Name:      "operations_total",
		Help:      "Count of explorer operations.",
	}, []string{"operation", "network", "status"})

	explorerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tangleinsight",
		Subsystem: "explorer",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})

	explorerResultSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tangleinsight",
		Subsystem: "explorer",
		Name:      "result_size",
		Help:      "Number of items returned per explorer operation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"operation", "network"})
)

// Explorer tracks metrics for the explorer services.
type Explorer struct{}

// NewExplorer constructs an Explorer collector.
func NewExplorer() *Explorer {
	return &Explorer{}
}

// Observe records an operation outcome, its duration and how many items it produced.
func (m Explorer) Observe(operation string, network model.Network, err error, items int, started time.Time) {
	if network == "" {
		network = "unknown"
	}
	status := statusOf(err)
	explorerOperationsTotal.WithLabelValues(operation, string(network), status).Inc()
	explorerOperationDuration.WithLabelValues(operation, string(network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		explorerResultSize.WithLabelValues(operation, string(network)).Observe(float64(items))
	}
}
