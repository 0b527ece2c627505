package ratelimit

import (
	"context"
	"testing"
	"time"

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

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	config := RateLimitConfig{Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "webhook:1.2.3.4", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "webhook:1.2.3.4", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "webhook:5.6.7.8", config)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")

	require.NoError(t, limiter.Reset(ctx, "webhook:1.2.3.4"))
	allowed, err = limiter.Allow(ctx, "webhook:1.2.3.4", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DisabledConfigAllows(t *testing.T) {
	limiter := NewRedisRateLimiter(nil)

	allowed, err := limiter.Allow(context.Background(), "k", RateLimitConfig{})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLoginLimiter_LocksAfterMaxAttempts(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLoginLimiter(client, 3, time.Minute)
	ctx := context.Background()
	key := "jane@example.com|127.0.0.1"

	for i := 0; i < 2; i++ {
		require.NoError(t, limiter.Hit(ctx, key))
	}
	locked, _, err := limiter.TooManyAttempts(ctx, key)
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, limiter.Hit(ctx, key))
	locked, retryAfter, err := limiter.TooManyAttempts(ctx, key)
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)

	require.NoError(t, limiter.Clear(ctx, key))
	locked, _, err = limiter.TooManyAttempts(ctx, key)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestRedisLoginLimiter_WindowDoesNotSlide(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLoginLimiter(client, 5, time.Minute)
	ctx := context.Background()

	require.NoError(t, limiter.Hit(ctx, "k"))
	ttlBefore := client.TTL(ctx, "login_attempts:k").Val()
	require.NoError(t, limiter.Hit(ctx, "k"))
	ttlAfter := client.TTL(ctx, "login_attempts:k").Val()

	assert.LessOrEqual(t, ttlAfter, ttlBefore)
}

func TestNewRedisLoginLimiter_Defaults(t *testing.T) {
	limiter := NewRedisLoginLimiter(nil, 0, 0)
	assert.Equal(t, defaultMaxAttempts, limiter.maxAttempts)
	assert.Equal(t, defaultDecay, limiter.decay)
}
