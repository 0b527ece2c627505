package auth

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
		DB:   14,
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

func TestRedisSessionStore(t *testing.T) {
	store := NewRedisSessionStore(setupTestRedis(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", 7, time.Minute))

	active, err := store.Active(ctx, "sess-1", 7)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = store.Active(ctx, "sess-1", 8)
	require.NoError(t, err)
	assert.False(t, active, "session bound to another user")

	require.NoError(t, store.Revoke(ctx, "sess-1"))
	active, err = store.Active(ctx, "sess-1", 7)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRedisSessionStore_EmptyID(t *testing.T) {
	store := NewRedisSessionStore(nil)
	assert.Error(t, store.Save(context.Background(), "", 1, time.Minute))
}
