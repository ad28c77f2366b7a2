package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/cache"
)

func newCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCountRoundTripAndTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	_, ok, err := c.GetCount(ctx, cache.LikesReceived, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetCount(ctx, cache.LikesReceived, 42, 7))
	assert.Equal(t, time.Minute, mr.TTL("likes:count:42"))

	mr.FastForward(30 * time.Second)
	n, ok, err := c.GetCount(ctx, cache.LikesReceived, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, time.Minute, mr.TTL("likes:count:42"), "ttl refreshed on read")

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.GetCount(ctx, cache.LikesReceived, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidateDropsBothCounters(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	require.NoError(t, c.SetCount(ctx, cache.LikesReceived, 1, 3))
	require.NoError(t, c.SetCount(ctx, cache.Matches, 1, 1))
	require.NoError(t, c.SetCount(ctx, cache.Matches, 2, 1))

	require.NoError(t, c.Invalidate(ctx, 1))
	assert.False(t, mr.Exists("likes:count:1"))
	assert.False(t, mr.Exists("matches:count:1"))
	assert.True(t, mr.Exists("matches:count:2"))

	require.NoError(t, c.Invalidate(ctx))
}

func TestCorruptCounter(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	require.NoError(t, mr.Set("matches:count:5", "nope"))
	_, _, err := c.GetCount(ctx, cache.Matches, 5)
	assert.Error(t, err)
}
