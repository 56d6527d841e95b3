package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusionWindow(t *testing.T) {
	store, mr := newTestStore(t)
	w := NewExclusionWindow(store, newTestGuard("test-window"), 0)
	ctx := context.Background()

	ids, err := w.Excluded(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, w.Record(ctx, "u1", "r1"))
	mr.FastForward(10 * time.Hour)
	require.NoError(t, w.Record(ctx, "u1", "r2"))
	require.NoError(t, w.Record(ctx, "u1", "r2"))

	ids, err = w.Excluded(ctx, "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"r1", "r2"}, ids)

	// ttl is reset to exactly 24h, not extended
	ttl, err := store.TTL(ctx, "recommended:u1")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)

	require.NoError(t, w.Reset(ctx, "u1"))
	ids, err = w.Excluded(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestExclusionWindow_Expires(t *testing.T) {
	store, mr := newTestStore(t)
	w := NewExclusionWindow(store, newTestGuard("test-window-expire"), time.Hour)
	ctx := context.Background()

	require.NoError(t, w.Record(ctx, "u1", "r1"))
	mr.FastForward(time.Hour)

	ids, err := w.Excluded(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
