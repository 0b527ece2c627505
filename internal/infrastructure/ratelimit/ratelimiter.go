package ratelimit

import (
	"context"
	"time"
)

// RateLimitConfig bounds requests per key inside a sliding window.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	Reset(ctx context.Context, key string) error
}
