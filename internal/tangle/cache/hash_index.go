package cache

import (
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
)

const hashIndexCacheName = "hash_index"

// HashIndex maps normalized criteria to resolved hash sets, per network.
type HashIndex struct {
	shards  map[model.Network]*shard
	metrics Metrics
}

// NewHashIndex creates one sub-cache per network.
func NewHashIndex(networks []model.Network, metrics Metrics) *HashIndex {
	shards := make(map[model.Network]*shard, len(networks))
	for _, n := range networks {
		shards[n] = newShard()
	}
	return &HashIndex{shards: shards, metrics: metrics}
}

// Get returns a copy of the resolved set cached under criteria.
func (h *HashIndex) Get(network model.Network, criteria model.Criteria) (model.ResolvedSet, bool) {
	sh, ok := h.shards[network]
	if !ok {
		return model.ResolvedSet{}, false
	}
	v, found := sh.get(criteria.Key())
	if h.metrics != nil {
		h.metrics.ObserveLookup(hashIndexCacheName, string(network), found)
	}
	if !found {
		return model.ResolvedSet{}, false
	}
	return cloneSet(v.(model.ResolvedSet)), true
}

// Put stores a copy of set under criteria.
func (h *HashIndex) Put(network model.Network, criteria model.Criteria, set model.ResolvedSet) {
	sh, ok := h.shards[network]
	if !ok {
		return
	}
	sh.put(criteria.Key(), cloneSet(set))
}

// Sweep evicts stale entries from every network and returns how many were removed.
func (h *HashIndex) Sweep(now time.Time) int {
	total := 0
	for network, sh := range h.shards {
		evicted := sh.sweep(func(v any) bool {
			return Stale(v.(model.ResolvedSet).CachedAt, now)
		})
		if h.metrics != nil {
			h.metrics.ObserveSweep(hashIndexCacheName, string(network), evicted)
		}
		total += evicted
	}
	return total
}

// Len returns the number of entries cached for network.
func (h *HashIndex) Len(network model.Network) int {
	sh, ok := h.shards[network]
	if !ok {
		return 0
	}
	return sh.len()
}

func cloneSet(set model.ResolvedSet) model.ResolvedSet {
	set.Hashes = append([]string(nil), set.Hashes...)
	set.Positions = append([]model.Cursor(nil), set.Positions...)
	return set
}
