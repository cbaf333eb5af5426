// Package cache provides the short-lived in-memory snapshot cache that sits
// in front of collection fetches. One Snapshot exists per (content type,
// language) pair; switching either simply constructs a new instance.
package cache

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is the freshness window for cached snapshots.
const DefaultTTL = 5 * time.Minute

// Keyed pairs an item with its synthetic composite key. The key embeds the
// content type, the item's source number and its index, so duplicate source
// numbers across imports still get unique keys.
type Keyed[T any] struct {
	Key  string `json:"uniqueId"`
	Item T      `json:"item"`
}

// Snapshot caches one collection snapshot for a bounded freshness window.
// It has no failure mode; errors belong to the fetch that populates it.
type Snapshot[T any] struct {
	contentType string
	ttl         time.Duration
	sourceKey   func(T) string

	// Now supplies the clock; tests override it.
	Now func() time.Time

	mu        sync.Mutex
	items     []Keyed[T]
	fetchedAt time.Time
}

// New builds an empty Snapshot. sourceKey extracts the per-item source
// number used in the composite key.
func New[T any](contentType string, ttl time.Duration, sourceKey func(T) string) *Snapshot[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshot[T]{
		contentType: contentType,
		ttl:         ttl,
		sourceKey:   sourceKey,
		Now:         time.Now,
	}
}

// Get returns the cached items if still fresh. At exactly the TTL boundary
// the entry counts as stale.
func (s *Snapshot[T]) Get() ([]Keyed[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items == nil || s.Now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	out := make([]Keyed[T], len(s.items))
	copy(out, s.items)
	return out, true
}

// Items returns just the cached item values, if fresh.
func (s *Snapshot[T]) Items() ([]T, bool) {
	keyed, ok := s.Get()
	if !ok {
		return nil, false
	}
	out := make([]T, len(keyed))
	for i, k := range keyed {
		out[i] = k.Item
	}
	return out, true
}

// Set stores a defensive copy of items with freshly computed composite keys
// and records the current time.
func (s *Snapshot[T]) Set(items []T) {
	keyed := make([]Keyed[T], len(items))
	for i, item := range items {
		keyed[i] = Keyed[T]{
			Key:  fmt.Sprintf("%s_%s_%d", s.contentType, s.sourceKey(item), i),
			Item: item,
		}
	}

	s.mu.Lock()
	s.items = keyed
	s.fetchedAt = s.Now()
	s.mu.Unlock()
}

// Invalidate drops the cached snapshot.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.items = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}
