package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemoryCacheEntries caps the in-process cache when no size is given.
const DefaultMemoryCacheEntries = 10_000

// MemoryCache is an in-process CacheRepository used when Redis is disabled
// and in tests. It holds at most maxEntries results, evicting the least
// recently used, and forgets entries older than ttl (ttl <= 0 keeps them
// until evicted).
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryCacheEntries
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, string](maxEntries, nil, ttl),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	return m.lru.Get(key)
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.lru.Add(key, value)
	return nil
}

// Len reports the number of cached entries.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
