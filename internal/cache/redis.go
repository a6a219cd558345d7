package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rishtahub/rishtahub/internal/config"
)

// CountTTL bounds how long a cached pending-interest count may serve reads
// before falling back to the database.
const CountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
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
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

func (c *RedisCache) Decr(ctx context.Context, key string) (int64, error) {
	return c.Client.Decr(ctx, key).Result()
}

// KeyForPendingCount generates the Redis key for a user's count of
// pending incoming interests.
func (c *RedisCache) KeyForPendingCount(userID uint64) string {
	return fmt.Sprintf("interests:pending:%d", userID)
}

// GetPendingCount reads the cached pending-interest count for a user.
// A cache miss returns (0, false, nil). TTL is refreshed on access.
func (c *RedisCache) GetPendingCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForPendingCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	_ = c.Client.Expire(ctx, key, CountTTL).Err()
	return n, true, nil
}

// SetPendingCount stores the pending-interest count with a fresh TTL.
func (c *RedisCache) SetPendingCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForPendingCount(userID), count, CountTTL).Err()
}
