// pkg/memcache/ttl_cache.go
package mem

import (
	"sync"
	"time"
)

// Store is a concurrency-safe key/value cache with per-entry expiry.
type Store[K comparable, V any] interface {
	Set(key K, value V, ttl time.Duration)

	// Get returns the value if present and not expired.
	Get(key K) (V, bool)

	// Purge drops expired entries and reports how many were removed.
	Purge() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLCache[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]entry[V]
	now  func() time.Time
}

func NewTTLCache[K comparable, V any]() *TTLCache[K, V] {
	return &TTLCache[K, V]{
		data: make(map[K]entry[V]),
		now:  time.Now,
	}
}

func (s *TTLCache[K, V]) Set(key K, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLCache[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *TTLCache[K, V]) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k) // cleanup expired
			n++
		}
	}
	return n
}

func (s *TTLCache[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
