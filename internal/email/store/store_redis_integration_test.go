//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normalro/internal/email"
	"normalro/pkg/platform/sentinel"
	"normalro/pkg/testutil/containers"
)

func TestRedisStore(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	s := NewRedisStore(rc.Client)

	now := time.Now().UTC().Truncate(time.Second)
	file := &email.TempFile{
		ID:        "0b6f1d9e-3c55-4b8e-9c1e-6a8f4f0d2a11",
		Filename:  "factura.pdf",
		Size:      2048,
		Path:      "/tmp/normalro-attachments/0b6f1d9e-3c55-4b8e-9c1e-6a8f4f0d2a11",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	require.NoError(t, s.Save(ctx, file))

	got, err := s.Get(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, file.Filename, got.Filename)
	assert.Equal(t, file.Size, got.Size)
	assert.True(t, file.ExpiresAt.Equal(got.ExpiresAt))

	ttl, err := rc.Client.TTL(ctx, tempFileKeyPrefix+file.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Minute)

	require.NoError(t, s.Delete(ctx, file.ID))
	_, err = s.Get(ctx, file.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, file.ID), sentinel.ErrNotFound)

	t.Run("already expired file is not stored", func(t *testing.T) {
		stale := *file
		stale.ID = "stale"
		stale.ExpiresAt = now.Add(-time.Minute)
		require.NoError(t, s.Save(ctx, &stale))
		_, err := s.Get(ctx, stale.ID)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
