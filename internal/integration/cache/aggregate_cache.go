// Package cache implements the aggregate cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vendagame/backend/internal/application/adapter"
)

// aggregateCache implements the adapter.AggregateCache interface on a
// Redis client. Values are stored as JSON under one key per
// (kind, company, month) with a short TTL.
type aggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAggregateCache creates a new aggregate cache instance.
func NewAggregateCache(client *redis.Client, ttl time.Duration) adapter.AggregateCache {
	return &aggregateCache{
		client: client,
		ttl:    ttl,
	}
}

// Get unmarshals the cached value for (kind, company, month) into dest
// and reports whether an entry was found.
func (c *aggregateCache) Get(ctx context.Context, kind string, companyID uuid.UUID, month string, dest interface{}) (bool, error) {
	payload, err := c.client.Get(ctx, cacheKey(kind, companyID, month)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

// Set stores the value for (kind, company, month) with the cache TTL.
func (c *aggregateCache) Set(ctx context.Context, kind string, companyID uuid.UUID, month string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(kind, companyID, month), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// InvalidateMonth drops every aggregate kind cached for (company, month).
func (c *aggregateCache) InvalidateMonth(ctx context.Context, companyID uuid.UUID, month string) error {
	keys := []string{
		cacheKey(adapter.CacheKindRanking, companyID, month),
		cacheKey(adapter.CacheKindTeamHealth, companyID, month),
		cacheKey(adapter.CacheKindConsolidatedProgress, companyID, month),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// cacheKey builds the Redis key for one aggregate entry.
func cacheKey(kind string, companyID uuid.UUID, month string) string {
	return fmt.Sprintf("agg:%s:%s:%s", kind, companyID, month)
}
