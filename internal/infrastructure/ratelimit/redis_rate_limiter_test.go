package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{PerMinute: 5}
	key := "login:10.0.0.1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "6th attempt should be denied")
}

func TestRedisRateLimiter_Allow_PerHour(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{PerHour: 3}
	key := "login:10.0.0.2"

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{PerMinute: 2}
	key := "login:10.0.0.3"

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(ctx, key, config)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, key))

	allowed, err = limiter.Allow(ctx, key, config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DistinctKeysIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{PerMinute: 1}

	allowed, err := limiter.Allow(ctx, "login:10.0.0.4", config)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "login:10.0.0.5", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNoopRateLimiter_AlwaysAllows(t *testing.T) {
	limiter := NewNoopRateLimiter()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(ctx, "any", Config{PerMinute: 1})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
