package metrics

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiverFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "archiver",
		Name:      "flush_total",
		Help:      "Count of archive write batches.",
	}, []string{"network", "status"})

	archiverFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tangleinsight",
		Subsystem: "archiver",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing a batch to the archive.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	archiverFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tangleinsight",
		Subsystem: "archiver",
		Name:      "flush_size",
		Help:      "Number of transactions written per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	archiverDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "archiver",
		Name:      "dropped_total",
		Help:      "Count of transactions dropped because the archive queue was full.",
	}, []string{"network"})
)

// Archiver tracks metrics for the write-through archiver of one network.
type Archiver struct {
	network model.Network
}

// NewArchiver constructs an Archiver collector.
func NewArchiver(network model.Network) *Archiver {
	if network == "" {
		network = "unknown"
	}
	return &Archiver{network: network}
}

// ObserveFlush records one batch write.
func (m Archiver) ObserveFlush(err error, size int, started time.Time) {
	status := statusOf(err)
	archiverFlushTotal.WithLabelValues(string(m.network), status).Inc()
	archiverFlushDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	archiverFlushSize.WithLabelValues(string(m.network)).Observe(float64(size))
}

// ObserveDropped counts transactions that could not be queued.
func (m Archiver) ObserveDropped(n int) {
	archiverDroppedTotal.WithLabelValues(string(m.network)).Add(float64(n))
}
