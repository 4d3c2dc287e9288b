package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"normalro/internal/company"
	"normalro/pkg/platform/sentinel"
)

const companyKeyPrefix = "normalro:company:"

// RedisCache shares cached company records between instances.
type RedisCache struct {
	client   *redis.Client
	cacheTTL time.Duration
}

// NewRedisCache constructs a Redis-backed company cache.
func NewRedisCache(client *redis.Client, cacheTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Set stores record as JSON with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, key company.LookupKey, record *company.Company) error {
	if record == nil {
		return nil
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode company: %w", err)
	}
	return c.client.Set(ctx, companyKeyPrefix+key.String(), payload, c.cacheTTL).Err()
}

// Get returns the record cached under key, or sentinel.ErrNotFound.
func (c *RedisCache) Get(ctx context.Context, key company.LookupKey) (*company.Company, error) {
	payload, err := c.client.Get(ctx, companyKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read company cache: %w", err)
	}
	var record company.Company
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode company: %w", err)
	}
	return &record, nil
}
