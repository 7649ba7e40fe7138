package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Count of cache lookups by result.",
	}, []string{"cache", "network", "result"})
	cacheEvictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tangleinsight",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Count of stale entries evicted by the sweeper.",
	}, []string{"cache", "network"})
)

// Cache tracks cache hit ratio and sweeper evictions.
type Cache struct{}

// NewCache creates a Cache metrics collector.
func NewCache() *Cache {
	return &Cache{}
}

// ObserveLookup records a cache hit or miss.
func (m Cache) ObserveLookup(cache, network string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(cache, network, result).Inc()
}

// ObserveSweep records entries evicted in one sweep pass.
func (m Cache) ObserveSweep(cache, network string, evicted int) {
	if evicted <= 0 {
		return
	}
	cacheEvictionsTotal.WithLabelValues(cache, network).Add(float64(evicted))
}
