package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCacheFromClient(client, ttl, zap.NewNop()), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, _ := setupRedisCache(t, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "hco:roi:missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "hco:roi:1", `{"roiPct":-40}`))
	val, ok := cache.Get(ctx, "hco:roi:1")
	assert.True(t, ok)
	assert.Equal(t, `{"roiPct":-40}`, val)
	assert.NoError(t, cache.Ping(ctx))
}

func TestRedisCache_TTLExpires(t *testing.T) {
	cache, mr := setupRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, mr := setupRedisCache(t, 0)
	mr.Close()

	_, ok := cache.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.Error(t, cache.Set(context.Background(), "k", "v"))
}
