// Package cache holds the per-network payload and hash-index caches and their stale sweeper.
package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// FreshTTL is the age under which a cached entry is served without asking a backend.
	FreshTTL = 60 * time.Second
	// StaleTTL is the age at which the sweeper evicts an entry.
	StaleTTL = 5 * time.Minute
)

type (
	// Metrics records cache effectiveness.
	Metrics interface {
		ObserveLookup(cache, network string, hit bool)
		ObserveSweep(cache, network string, evicted int)
	}
)

// Fresh reports whether an entry cached at cachedAt may still be served at now.
func Fresh(cachedAt, now time.Time) bool {
	return now.Sub(cachedAt) < FreshTTL
}

// Stale reports whether an entry cached at cachedAt is due for eviction at now.
func Stale(cachedAt, now time.Time) bool {
	return now.Sub(cachedAt) >= StaleTTL
}

// shard is one network's map. Entries are whole immutable values, so a reader sees either the old or
// the new record. Blind puts share the read lock. The sweep pass and read-modify-write updates take the
// write lock, so an entry refreshed mid-sweep is never evicted and an update sees the latest record.
type shard struct {
	mu    sync.RWMutex
	items *gocache.Cache
}

func newShard() *shard {
	return &shard{items: gocache.New(gocache.NoExpiration, 0)}
}

func (s *shard) get(key string) (any, bool) {
	return s.items.Get(key)
}

func (s *shard) put(key string, value any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.items.Set(key, value, gocache.NoExpiration)
}

func (s *shard) update(key string, fn func(any, bool) (any, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, found := s.items.Get(key)
	next, ok := fn(current, found)
	if !ok {
		return false
	}
	s.items.Set(key, next, gocache.NoExpiration)
	return true
}

func (s *shard) sweep(expired func(any) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, item := range s.items.Items() {
		if expired(item.Object) {
			s.items.Delete(key)
			evicted++
		}
	}
	return evicted
}

func (s *shard) len() int {
	return s.items.ItemCount()
}
