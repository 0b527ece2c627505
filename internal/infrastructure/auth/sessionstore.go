package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore records live access-token sessions. A token is honoured
// only while its session key exists, so deleting the key revokes it.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client, prefix: sessionKeyPrefix}
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("session id cannot be empty")
	}
	if err := s.client.Set(ctx, s.key(sessionID), strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// Active reports whether the session exists and belongs to userID.
func (s *RedisSessionStore) Active(ctx context.Context, sessionID string, userID uint) (bool, error) {
	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session from redis: %w", err)
	}
	return val == strconv.FormatUint(uint64(userID), 10), nil
}

func (s *RedisSessionStore) key(sessionID string) string {
	return s.prefix + sessionID
}
