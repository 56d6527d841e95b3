package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/recipescope/pkg/cache"
	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/metrics"
	"github.com/umputun/recipescope/pkg/upstream"
)

// QuotaGate limits daily recommendations of non-subscribers.
// The counter key carries the calendar date, its expiry is anchored to the first request of the day.
type QuotaGate struct {
	store    cache.Store
	guard    *upstream.Guard
	limit    int64
	ttl      time.Duration
	location *time.Location
	now      func() time.Time
}

// QuotaParams defines quota gate parameters
type QuotaParams struct {
	DailyLimit int64
	TTL        time.Duration
	Location   *time.Location
}

type counterResult struct {
	value int64
	ok    bool
}

// NewQuotaGate makes quota gate, zero params get defaults of 50/day, 24h, UTC
func NewQuotaGate(store cache.Store, guard *upstream.Guard, params QuotaParams) *QuotaGate {
	if params.DailyLimit <= 0 {
		params.DailyLimit = 50
	}
	if params.TTL <= 0 {
		params.TTL = 24 * time.Hour
	}
	if params.Location == nil {
		params.Location = time.UTC
	}
	return &QuotaGate{store: store, guard: guard, limit: params.DailyLimit, ttl: params.TTL,
		location: params.Location, now: time.Now}
}

// Check consumes one unit of today's quota. Subscribers pass without touching the counter.
// A denied request does not change the counter.
func (q *QuotaGate) Check(ctx context.Context, userID string, subscriber bool) error {
	if subscriber {
		return nil
	}
	key := q.key(userID)
	res, err := upstream.Call(ctx, q.guard, "check quota", func(ctx context.Context) (counterResult, error) {
		v, ok, err := q.store.IncrCapped(ctx, key, q.limit, q.ttl)
		return counterResult{value: v, ok: ok}, err
	})
	if err != nil {
		return err
	}
	if !res.ok {
		metrics.RecordQuotaRejection()
		return fmt.Errorf("user %s used %d of %d: %w", userID, res.value, q.limit, domain.ErrQuotaExceeded)
	}
	return nil
}

// Usage returns today's count and the daily limit
func (q *QuotaGate) Usage(ctx context.Context, userID string) (used, limit int64, err error) {
	used, err = upstream.Call(ctx, q.guard, "read quota", func(ctx context.Context) (int64, error) {
		return q.store.GetInt(ctx, q.key(userID))
	})
	if err != nil {
		return 0, q.limit, err
	}
	return used, q.limit, nil
}

// Limit returns the daily limit
func (q *QuotaGate) Limit() int64 { return q.limit }

func (q *QuotaGate) key(userID string) string {
	return fmt.Sprintf("quota:%s:%s", userID, q.now().In(q.location).Format("2006-01-02"))
}
