// Package cache provides the Redis-backed cache for LLM extraction results.
// Identical descriptions resolve from the cache instead of re-billing the
// gateway.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/config"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ExtractionCache = (*Redis)(nil)

// Redis implements [ports.ExtractionCache] over a single Redis instance.
// Entries expire after the configured TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis creates a Redis cache from cfg. The connection is established
// lazily; readiness is reported through HealthCheck.
func NewRedis(cfg *config.RedisConfig, logger *slog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{client: client, ttl: cfg.TTL, logger: logger}
}

// Get returns the cached value for key. A missing key is reported through
// the bool, not as an error.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Close releases the client's connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Name returns the identifier used when the cache is registered with a
// [ports.HealthRegistry].
func (r *Redis) Name() string {
	return "redis"
}

// HealthCheck pings the Redis instance. The cache is an optimization, so
// composition wires this checker only when the cache is enabled; a failing
// cache then surfaces in readiness without blocking LLM operations.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
