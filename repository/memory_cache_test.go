package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache(10, time.Hour)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	assert.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_EvictsBeyondCapacity(t *testing.T) {
	cache := NewMemoryCache(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}
	// touch k0 so k1 becomes the least recently used entry
	_, ok := cache.Get(ctx, "k0")
	assert.True(t, ok)

	for i := 3; i < 1000; i++ {
		assert.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v"))
		assert.LessOrEqual(t, cache.Len(), 3)
	}

	_, ok = cache.Get(ctx, "k1")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "k999")
	assert.True(t, ok)
}

func TestMemoryCache_EvictionOrder(t *testing.T) {
	cache := NewMemoryCache(2, time.Hour)
	ctx := context.Background()

	_ = cache.Set(ctx, "a", "1")
	_ = cache.Set(ctx, "b", "2")
	cache.Get(ctx, "a")
	_ = cache.Set(ctx, "c", "3")

	_, ok := cache.Get(ctx, "b")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "a")
	assert.True(t, ok)
}

func TestMemoryCache_ExpiresAfterTTL(t *testing.T) {
	cache := NewMemoryCache(10, 20*time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, "k", "v"))
	assert.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, "k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryCache_DefaultCapacity(t *testing.T) {
	cache := NewMemoryCache(0, 0)
	ctx := context.Background()

	for i := 0; i < DefaultMemoryCacheEntries+10; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("k%d", i), "v")
	}
	assert.Equal(t, DefaultMemoryCacheEntries, cache.Len())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache(100, time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			_ = cache.Set(ctx, key, "v")
			cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Len())
}
