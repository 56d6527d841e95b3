package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore_Suite(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, _ := newTestRedis(t)
		return s
	})
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedis(t)

	_, ok, err := s.IncrCapped(ctx, "quota:u1:2026-10-16", 1, 24*time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = s.IncrCapped(ctx, "quota:u1:2026-10-16", 1, 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "limit reached")

	mr.FastForward(24*time.Hour + time.Second)

	v, ok, err := s.IncrCapped(ctx, "quota:u1:2026-10-16", 1, 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "counter expired")
	assert.Equal(t, int64(1), v)

	require.NoError(t, s.SAdd(ctx, "recommended:u1", time.Hour, "r1"))
	mr.FastForward(time.Hour + time.Second)
	members, err := s.SMembers(ctx, "recommended:u1")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestNewRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(context.Background(), RedisConfig{Addr: mr.Addr(), Timeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	mr.Close()
	_, err = NewRedisStore(context.Background(), RedisConfig{Addr: mr.Addr(), Timeout: 100 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis")
}

func TestRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedis(t)
	mr.SetError("server is down")

	_, err := s.HGetAll(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hgetall k")

	_, _, err = s.IncrCapped(ctx, "k", 1, time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incr capped k")

	err = s.SAdd(ctx, "k", time.Hour, "m")
	require.Error(t, err)
}
