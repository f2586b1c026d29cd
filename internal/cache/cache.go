// Package cache provides a bounded, hash-sharded key/value cache.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultShardCount = 16

// Sharded spreads keys over independently locked shards. Each shard holds
// at most its share of the total capacity and evicts its oldest entry first.
type Sharded[V any] struct {
	shards []shard[V]
}

type shard[V any] struct {
	mx    sync.RWMutex
	limit int
	items map[string]V
	order []string
}

// New creates a cache with the given shard count and total capacity.
// Non-positive values fall back to defaults (16 shards, 1024 entries).
// The shard limits add up to exactly capacity; a capacity below the shard
// count shrinks the shard count to match.
func New[V any](shardCount, capacity int) *Sharded[V] {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	if capacity <= 0 {
		capacity = 1024
	}
	shardCount = min(shardCount, capacity)

	c := &Sharded[V]{shards: make([]shard[V], shardCount)}
	for i := range c.shards {
		limit := capacity / shardCount
		if i < capacity%shardCount {
			limit++
		}
		c.shards[i].limit = limit
		c.shards[i].items = make(map[string]V, limit)
	}
	return c
}

func (c *Sharded[V]) shardFor(key string) *shard[V] {
	return &c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Get returns the cached value for key
func (c *Sharded[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mx.RLock()
	defer s.mx.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Set stores value under key, evicting the shard's oldest entry when full.
func (c *Sharded[V]) Set(key string, value V) {
	s := c.shardFor(key)
	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.items[key]; ok {
		s.items[key] = value
		return
	}
	for len(s.order) >= s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.items, oldest)
	}
	s.items[key] = value
	s.order = append(s.order, key)
}

// GetOrCompute returns the cached value for key or stores and returns compute().
func (c *Sharded[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}

// Len returns the number of cached entries across all shards
func (c *Sharded[V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mx.RLock()
		n += len(s.items)
		s.mx.RUnlock()
	}
	return n
}
