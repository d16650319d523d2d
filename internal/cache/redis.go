package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix for cached analysis results.
const resultKeyPrefix = "analysis:"

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
	}, nil
}

// GetResult retrieves a cached result by key
func (c *RedisCache) GetResult(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, resultKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SetResult stores a serialized result with TTL
func (c *RedisCache) SetResult(ctx context.Context, key string, result []byte, ttl time.Duration) error {
	return c.client.Set(ctx, resultKeyPrefix+key, result, ttl).Err()
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
