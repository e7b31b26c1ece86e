package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/snapgram/snapgram/pkg/config"
	"github.com/snapgram/snapgram/pkg/logging"
)

const keyPrefix = "snapgram:"

// ErrCacheDisabled is returned when cache operations are attempted but cache is disabled
var ErrCacheDisabled = fmt.Errorf("cache is disabled")

// Cache wraps Redis client
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// New creates a new Redis cache client
func New(cfg *config.RedisConfig) (*Cache, error) {
	if !cfg.Enabled {
		logging.GetLogger().Info("Redis cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetLogger().Info("Redis connection established")

	return &Cache{
		client: client,
		logger: logging.GetLogger().With(zap.String("component", "cache")),
	}, nil
}

// NamespaceKey prefixes a key with the application namespace
func NamespaceKey(key string) string {
	return keyPrefix + key
}

// ScopeKey returns the version key for a named view scope
func ScopeKey(scope string) string {
	return keyPrefix + "view:" + scope
}

// Get retrieves a value from cache
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrCacheDisabled
	}
	return c.client.Get(ctx, NamespaceKey(key)).Result()
}

// Set sets a value in cache with TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Set(ctx, NamespaceKey(key), value, ttl).Err()
}

// Delete removes a key from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Del(ctx, NamespaceKey(key)).Err()
}

// Invalidate bumps the version of each named view scope so the next read
// under that scope misses and recomputes. Safe to call on a nil cache.
func (c *Cache) Invalidate(ctx context.Context, scopes ...string) {
	if c == nil || c.client == nil {
		return
	}
	for _, scope := range scopes {
		if err := c.client.Incr(ctx, ScopeKey(scope)).Err(); err != nil {
			c.logger.Warn("Failed to invalidate view scope",
				zap.String("scope", scope), zap.Error(err))
		}
	}
}

// ScopeVersion returns the current version of a view scope, 0 when unset
func (c *Cache) ScopeVersion(ctx context.Context, scope string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, ErrCacheDisabled
	}
	v, err := c.client.Get(ctx, ScopeKey(scope)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Health checks Redis health
func (c *Cache) Health(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Ping(ctx).Err()
}
