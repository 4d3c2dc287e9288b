package store

import (
	"context"
	"sync"
	"time"

	"normalro/internal/company"
	"normalro/pkg/platform/sentinel"
)

type cachedCompany struct {
	record   company.Company
	storedAt time.Time
}

// InMemoryCache keeps company records in process memory with TTL expiration.
type InMemoryCache struct {
	mu       sync.RWMutex
	records  map[string]cachedCompany
	cacheTTL time.Duration
	now      func() time.Time
}

// MemoryOption configures an InMemoryCache.
type MemoryOption func(*InMemoryCache)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *InMemoryCache) {
		c.now = now
	}
}

// NewInMemoryCache creates an in-memory cache with the given TTL.
func NewInMemoryCache(cacheTTL time.Duration, opts ...MemoryOption) *InMemoryCache {
	c := &InMemoryCache{
		records:  make(map[string]cachedCompany),
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores a record under key. A nil record is a no-op.
func (c *InMemoryCache) Set(_ context.Context, key company.LookupKey, record *company.Company) error {
	if record == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[key.String()] = cachedCompany{record: *record, storedAt: c.now()}
	return nil
}

// Get returns the record cached under key.
// Returns sentinel.ErrNotFound if it is missing or older than the TTL.
func (c *InMemoryCache) Get(_ context.Context, key company.LookupKey) (*company.Company, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.records[key.String()]; ok {
		if c.now().Sub(cached.storedAt) < c.cacheTTL {
			record := cached.record
			return &record, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Purge drops expired entries and returns how many were removed.
func (c *InMemoryCache) Purge(_ context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for key, cached := range c.records {
		if now.Sub(cached.storedAt) >= c.cacheTTL {
			delete(c.records, key)
			removed++
		}
	}
	return removed
}
