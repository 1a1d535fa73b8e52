// Package redis stores model answers in Redis hashes keyed by request fingerprint.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/glass/internal/domain"
	"github.com/davidbz/glass/internal/observability"
)

const (
	fieldAnswer    = "answer"
	fieldIndexedAt = "indexed_at"
)

// SuggestionCache implements domain.SuggestionCache on a Redis client.
type SuggestionCache struct {
	client *redis.Client
	prefix string
}

// NewSuggestionCache creates a cache whose keys start with prefix.
func NewSuggestionCache(client *redis.Client, prefix string) *SuggestionCache {
	return &SuggestionCache{
		client: client,
		prefix: prefix,
	}
}

// Ping checks the connection to the Redis server.
func (c *SuggestionCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get returns the answer stored under key, or domain.ErrCacheMiss.
func (c *SuggestionCache) Get(ctx context.Context, key string) (string, error) {
	answer, err := c.client.HGet(ctx, c.prefix+key, fieldAnswer).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cache entry: %w", err)
	}

	return answer, nil
}

// Set stores an answer. A non-positive ttl keeps the entry until evicted.
func (c *SuggestionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	logger := observability.FromContext(ctx)
	fullKey := c.prefix + key

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, fullKey,
		fieldAnswer, value,
		fieldIndexedAt, time.Now().Unix(),
	)
	if ttl > 0 {
		pipe.Expire(ctx, fullKey, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("cache write failed",
			observability.String("key", fullKey),
			observability.Error(err))
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	logger.Debug("cache entry stored",
		observability.String("key", fullKey),
		observability.Duration("ttl", ttl))
	return nil
}
