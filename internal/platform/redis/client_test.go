package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normalro/internal/platform/config"
)

func TestNew_EmptyURLDisablesRedis(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)

	// nil client is usable for health and close.
	assert.NoError(t, client.Health(context.Background()))
	assert.NoError(t, client.Close())
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis URL")
}

func TestOptions_AppliesPoolSettings(t *testing.T) {
	opts, err := Options(config.RedisConfig{
		URL:          "redis://cache.internal:6380/2",
		PoolSize:     25,
		MinIdleConns: 4,
		ReadTimeout:  2 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 25, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
	assert.Equal(t, 2*time.Second, opts.ReadTimeout)
	assert.Zero(t, opts.DialTimeout, "unset timeouts keep the library default")
}
