package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultDecay       = time.Minute
)

// RedisLoginLimiter counts failed login attempts per key. The counter starts
// its decay window on the first failure and is dropped when it elapses.
type RedisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	decay       time.Duration
}

func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, decay time.Duration) *RedisLoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if decay <= 0 {
		decay = defaultDecay
	}
	return &RedisLoginLimiter{client: client, maxAttempts: maxAttempts, decay: decay}
}

// TooManyAttempts reports whether key is locked out and, if so, how long until it may retry.
func (l *RedisLoginLimiter) TooManyAttempts(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := l.key(key)

	pipe := l.client.Pipeline()
	get := pipe.Get(ctx, redisKey)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, 0, fmt.Errorf("failed to read login attempts: %w", err)
	}

	attempts, err := get.Int()
	if err == redis.Nil {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to parse login attempts: %w", err)
	}
	if attempts < l.maxAttempts {
		return false, 0, nil
	}

	retryAfter := ttl.Val()
	if retryAfter <= 0 {
		retryAfter = l.decay
	}
	return true, retryAfter, nil
}

func (l *RedisLoginLimiter) Hit(ctx context.Context, key string) error {
	redisKey := l.key(key)

	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.decay)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}

func (l *RedisLoginLimiter) Clear(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to clear login attempts: %w", err)
	}
	return nil
}

func (l *RedisLoginLimiter) key(key string) string {
	return "login_attempts:" + key
}
