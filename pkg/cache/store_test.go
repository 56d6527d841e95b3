package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises a Store implementation, every backend must pass it
func runStoreSuite(t *testing.T, makeStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("hash replace drops old fields", func(t *testing.T) {
		s := makeStore(t)
		require.NoError(t, s.HReplace(ctx, "personalization:u1", map[string]string{"budget": "Low", "recipeType": "soup"}))
		require.NoError(t, s.HReplace(ctx, "personalization:u1", map[string]string{"targetLifestyle": "senior"}))

		res, err := s.HGetAll(ctx, "personalization:u1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"targetLifestyle": "senior"}, res)

		ttl, err := s.TTL(ctx, "personalization:u1")
		require.NoError(t, err)
		assert.Equal(t, NoExpiry, ttl)
	})

	t.Run("hash replace with empty fields deletes", func(t *testing.T) {
		s := makeStore(t)
		require.NoError(t, s.HReplace(ctx, "h", map[string]string{"a": "1"}))
		require.NoError(t, s.HReplace(ctx, "h", nil))

		res, err := s.HGetAll(ctx, "h")
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("missing keys", func(t *testing.T) {
		s := makeStore(t)
		h, err := s.HGetAll(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, h)

		m, err := s.SMembers(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, m)

		v, err := s.GetInt(ctx, "nope")
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)

		ttl, err := s.TTL(ctx, "nope")
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), ttl)

		require.NoError(t, s.Del(ctx, "nope"))
	})

	t.Run("set add is idempotent and resets ttl", func(t *testing.T) {
		s := makeStore(t)
		require.NoError(t, s.SAdd(ctx, "recommended:u1", time.Hour, "r1"))
		require.NoError(t, s.SAdd(ctx, "recommended:u1", 2*time.Hour, "r2", "r1"))

		members, err := s.SMembers(ctx, "recommended:u1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"r1", "r2"}, members)

		ttl, err := s.TTL(ctx, "recommended:u1")
		require.NoError(t, err)
		assert.InDelta(t, (2 * time.Hour).Seconds(), ttl.Seconds(), 2)

		// shorter ttl replaces, not extends
		require.NoError(t, s.SAdd(ctx, "recommended:u1", 30*time.Minute, "r3"))
		ttl, err = s.TTL(ctx, "recommended:u1")
		require.NoError(t, err)
		assert.InDelta(t, (30 * time.Minute).Seconds(), ttl.Seconds(), 2)
	})

	t.Run("set delete", func(t *testing.T) {
		s := makeStore(t)
		require.NoError(t, s.SAdd(ctx, "recommended:u2", time.Hour, "r1", "r2"))
		require.NoError(t, s.Del(ctx, "recommended:u2"))
		members, err := s.SMembers(ctx, "recommended:u2")
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("capped increment", func(t *testing.T) {
		s := makeStore(t)
		for i := int64(1); i <= 3; i++ {
			v, ok, err := s.IncrCapped(ctx, "quota:u1:2026-10-16", 3, time.Hour)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, i, v)
		}

		v, ok, err := s.IncrCapped(ctx, "quota:u1:2026-10-16", 3, time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(3), v)

		got, err := s.GetInt(ctx, "quota:u1:2026-10-16")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got)
	})

	t.Run("capped increment keeps first expiry", func(t *testing.T) {
		s := makeStore(t)
		_, _, err := s.IncrCapped(ctx, "quota:u2:2026-10-16", 10, time.Hour)
		require.NoError(t, err)
		_, _, err = s.IncrCapped(ctx, "quota:u2:2026-10-16", 10, 5*time.Minute)
		require.NoError(t, err)

		ttl, err := s.TTL(ctx, "quota:u2:2026-10-16")
		require.NoError(t, err)
		assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 2)
	})

	t.Run("capped increment is atomic", func(t *testing.T) {
		s := makeStore(t)
		const workers, limit = 20, 7

		var wg sync.WaitGroup
		var allowed, denied int32
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, ok, err := s.IncrCapped(ctx, "quota:u3:2026-10-16", limit, time.Hour)
				if !assert.NoError(t, err) {
					return
				}
				if ok {
					atomic.AddInt32(&allowed, 1)
					return
				}
				atomic.AddInt32(&denied, 1)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(limit), allowed)
		assert.Equal(t, int32(workers-limit), denied)
		v, err := s.GetInt(ctx, "quota:u3:2026-10-16")
		require.NoError(t, err)
		assert.Equal(t, int64(limit), v)
	})

	t.Run("ping", func(t *testing.T) {
		s := makeStore(t)
		assert.NoError(t, s.Ping(ctx))
	})
}
