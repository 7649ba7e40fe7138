package cache

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
)

// Registry owns the process-wide caches. It is built once at startup and passed to the services.
type Registry struct {
	Payloads *PayloadStore
	Hashes   *HashIndex
}

// NewRegistry creates payload and hash-index sub-caches for every configured network.
func NewRegistry(networks []model.Network, metrics Metrics) *Registry {
	return &Registry{
		Payloads: NewPayloadStore(networks, metrics),
		Hashes:   NewHashIndex(networks, metrics),
	}
}

// Sweep evicts stale entries from both caches.
func (r *Registry) Sweep(now time.Time) (payloads, hashes int) {
	return r.Payloads.Sweep(now), r.Hashes.Sweep(now)
}
