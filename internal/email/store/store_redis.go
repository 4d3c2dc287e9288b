package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"normalro/internal/email"
	"normalro/pkg/platform/sentinel"
)

const tempFileKeyPrefix = "normalro:tempfile:"

// RedisStore keeps temp file metadata in Redis; entries expire with the file.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore constructs a Redis-backed metadata store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
	}
}

// Save stores file as JSON until its expiry time.
func (s *RedisStore) Save(ctx context.Context, file *email.TempFile) error {
	if file == nil {
		return nil
	}
	ttl := file.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode temp file: %w", err)
	}
	return s.client.Set(ctx, tempFileKeyPrefix+file.ID, payload, ttl).Err()
}

// Get returns the metadata for id, or sentinel.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*email.TempFile, error) {
	payload, err := s.client.Get(ctx, tempFileKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}
	var file email.TempFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode temp file: %w", err)
	}
	return &file, nil
}

// Delete removes the metadata for id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, tempFileKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete temp file: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
