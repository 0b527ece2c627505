package usecases

import (
	"context"
	"time"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}

type JWTService interface {
	Generate(userID uint, sessionID string, role string) (*TokenPair, error)
	AccessTTL() time.Duration
}

// SessionStore tracks issued access tokens so logout can revoke them.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
}

// LoginLimiter counts failed logins per key inside a decay window.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, key string) (bool, time.Duration, error)
	Hit(ctx context.Context, key string) error
	Clear(ctx context.Context, key string) error
}

// SessionIDGenerator returns a fresh opaque session id.
type SessionIDGenerator func() string
