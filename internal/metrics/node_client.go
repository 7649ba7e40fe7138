package metrics

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of node API operations.",
	}, []string{"operation", "network", "status"})
	nodeClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tangleinsight",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeClient tracks metrics for HTTP API calls to tangle nodes.
type NodeClient struct {
	network model.Network
}

// NewNodeClient constructs a metrics collector for node API calls.
func NewNodeClient(network model.Network) *NodeClient {
	if network == "" {
		network = "unknown"
	}
	return &NodeClient{network: network}
}

// Observe records a single node API call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	nodeClientRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	nodeClientRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
