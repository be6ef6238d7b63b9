//go:build unit
// +build unit

package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyatanya/habit-tracker/internal/pkg/config"
	"github.com/niyatanya/habit-tracker/internal/pkg/testutil"
)

func TestMemorySessionStore_RevokeAndPurge(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "short", time.Minute))
	require.NoError(t, store.Revoke(ctx, "long", time.Hour))

	revoked, err := store.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.Equal(t, 1, store.Purge())
	assert.Equal(t, 1, store.Len())
}

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisSessionStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisSessionStore(client)
}

func TestRedisSessionStore_RevokeExpires(t *testing.T) {
	ctx := context.Background()
	mr, store := setupMiniRedis(t)

	require.NoError(t, store.Revoke(ctx, "token-id", time.Minute))
	assert.True(t, mr.Exists(revokedKeyPrefix+"token-id"))

	revoked, err := store.IsRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisSessionStore_ZeroTTLIsNoop(t *testing.T) {
	ctx := context.Background()
	mr, store := setupMiniRedis(t)

	require.NoError(t, store.Revoke(ctx, "token-id", 0))
	assert.False(t, mr.Exists(revokedKeyPrefix+"token-id"))
}

func TestRedisSessionStore_ServerDown(t *testing.T) {
	mr, store := setupMiniRedis(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "token-id")
	assert.Error(t, err)
}

func TestNewSessionStore(t *testing.T) {
	ctx := context.Background()
	log := testutil.SetupTestLogger(t)

	memory, err := NewSessionStore(ctx, &config.SessionStoreSettings{Type: config.SessionStoreMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemorySessionStore{}, memory)

	mr := miniredis.RunT(t)
	redisStore, err := NewSessionStore(ctx, &config.SessionStoreSettings{Type: config.SessionStoreRedis, RedisAddr: mr.Addr()}, log)
	require.NoError(t, err)
	assert.IsType(t, &RedisSessionStore{}, redisStore)
	require.NoError(t, redisStore.(*RedisSessionStore).Close())

	_, err = NewSessionStore(ctx, &config.SessionStoreSettings{Type: config.SessionStoreRedis}, log)
	assert.Error(t, err)
}

func TestSchedulePurge(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	c := cron.New()

	scheduled, err := SchedulePurge(c, NewMemorySessionStore(), log)
	require.NoError(t, err)
	assert.True(t, scheduled)
	assert.Len(t, c.Entries(), 1)

	_, store := setupMiniRedis(t)
	scheduled, err = SchedulePurge(c, store, log)
	require.NoError(t, err)
	assert.False(t, scheduled)
	assert.Len(t, c.Entries(), 1)
}
