package cache

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	"github.com/moznion/go-optional"
)

const payloadCacheName = "payload"

// PayloadStore maps transaction hashes to payloads and confirmation metadata, per network.
type PayloadStore struct {
	shards  map[model.Network]*shard
	metrics Metrics
}

// NewPayloadStore creates one sub-cache per network. The network set is fixed for the store's lifetime.
func NewPayloadStore(networks []model.Network, metrics Metrics) *PayloadStore {
	shards := make(map[model.Network]*shard, len(networks))
	for _, n := range networks {
		shards[n] = newShard()
	}
	return &PayloadStore{shards: shards, metrics: metrics}
}

// Get returns the cached payload for hash, regardless of its age.
func (s *PayloadStore) Get(network model.Network, hash string) (model.CachedPayload, bool) {
	sh, ok := s.shards[network]
	if !ok {
		return model.CachedPayload{}, false
	}
	v, found := sh.get(hash)
	s.observeLookup(network, found)
	if !found {
		return model.CachedPayload{}, false
	}
	return v.(model.CachedPayload), true
}

// Put stores p, replacing any previous record for the same hash.
func (s *PayloadStore) Put(network model.Network, p model.CachedPayload) {
	sh, ok := s.shards[network]
	if !ok {
		return
	}
	sh.put(p.Hash, p)
}

// Merge stores p and returns the record the store now holds. A confirmed entry is never replaced by an
// unconfirmed one; it is kept and only its CachedAt advances.
func (s *PayloadStore) Merge(network model.Network, p model.CachedPayload) model.CachedPayload {
	sh, ok := s.shards[network]
	if !ok {
		return p
	}
	kept := p
	sh.update(p.Hash, func(current any, found bool) (any, bool) {
		if found {
			kept = mergePayload(current.(model.CachedPayload), p)
		}
		return kept, true
	})
	return kept
}

// MarkConfirmed upgrades a cached, unconfirmed payload to Confirmed at the given milestone index.
// It reports whether an entry was changed.
func (s *PayloadStore) MarkConfirmed(network model.Network, hash string, index uint64, now time.Time) bool {
	sh, ok := s.shards[network]
	if !ok {
		return false
	}
	return sh.update(hash, func(current any, found bool) (any, bool) {
		if !found {
			return nil, false
		}
		p := current.(model.CachedPayload)
		if p.IsEmpty() || p.State == model.StateConfirmed {
			return nil, false
		}
		p.State = model.StateConfirmed
		p.ConfirmationIndex = optional.Some(index)
		p.CachedAt = now
		return p, true
	})
}

// Sweep evicts stale entries from every network and returns how many were removed.
func (s *PayloadStore) Sweep(now time.Time) int {
	total := 0
	for network, sh := range s.shards {
		evicted := sh.sweep(func(v any) bool {
			return Stale(v.(model.CachedPayload).CachedAt, now)
		})
		if s.metrics != nil {
			s.metrics.ObserveSweep(payloadCacheName, string(network), evicted)
		}
		total += evicted
	}
	return total
}

// Len returns the number of entries cached for network.
func (s *PayloadStore) Len(network model.Network) int {
	sh, ok := s.shards[network]
	if !ok {
		return 0
	}
	return sh.len()
}

func (s *PayloadStore) observeLookup(network model.Network, hit bool) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveLookup(payloadCacheName, string(network), hit)
}

func mergePayload(current, next model.CachedPayload) model.CachedPayload {
	if current.State != model.StateConfirmed || next.State == model.StateConfirmed {
		return next
	}
	if next.CachedAt.After(current.CachedAt) {
		current.CachedAt = next.CachedAt
	}
	return current
}
