package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/matchbot/internal/config"
)

// Counter names a cached per-user count.
type Counter string

const (
	LikesReceived Counter = "likes"
	Matches       Counter = "matches"
)

// RedisCache keeps per-user counters (likes received, mutual matches) in
// front of the relationship queries.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return New(redis.NewClient(opts), cfg.Discovery.CountCacheTTL)
}

// New wraps an existing client. A non-positive ttl falls back to one hour.
func New(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// Key generates the Redis key for a user's counter, e.g. "likes:count:42".
func Key(counter Counter, userID int64) string {
	return fmt.Sprintf("%s:count:%d", counter, userID)
}

// SetCount stores a counter. TTL is always refreshed on write.
func (c *RedisCache) SetCount(ctx context.Context, counter Counter, userID, count int64) error {
	return c.Client.Set(ctx, Key(counter, userID), count, c.TTL).Err()
}

// GetCount reads a counter. ok is false on a cache miss.
func (c *RedisCache) GetCount(ctx context.Context, counter Counter, userID int64) (count int64, ok bool, err error) {
	key := Key(counter, userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	count, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt counter %s: %w", key, err)
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, c.TTL).Err()
	return count, true, nil
}

// Invalidate drops every cached counter of the given users.
func (c *RedisCache) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, 2*len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, Key(LikesReceived, id), Key(Matches, id))
	}
	return c.Client.Del(ctx, keys...).Err()
}
