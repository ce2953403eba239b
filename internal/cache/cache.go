// Package cache реализует read-through кэширование горячих выборок в Redis.
// Кэш всегда best-effort: ошибки Redis логируются и не ломают запрос.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_cache_hits_total",
		Help: "Number of cache reads served from Redis.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_cache_misses_total",
		Help: "Number of cache reads that fell through to Postgres.",
	})
)

// Client is the thin typed wrapper around a Redis connection.
type Client struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewClient wraps an existing Redis connection.
func NewClient(rdb *redis.Client, logger *zap.Logger) *Client {
	return &Client{
		rdb:    rdb,
		logger: logger.Named("Cache"),
	}
}

// GetJSON loads and unmarshals the value stored under key into dest.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			cacheMissesTotal.Inc()
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Битое значение трактуем как промах и затираем
		c.logger.Warn("Corrupted cache entry, dropping", zap.String("key", key), zap.Error(err))
		c.rdb.Del(ctx, key)
		cacheMissesTotal.Inc()
		return ErrCacheMiss
	}
	cacheHitsTotal.Inc()
	return nil
}

// SetJSON marshals and stores value under key with the given TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

// Invalidate removes the given keys.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cache keys", zap.Strings("keys", keys), zap.Error(err))
	}
}
