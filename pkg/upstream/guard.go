// Package upstream protects calls to the cache and the catalog with a per-call timeout
// and a circuit breaker. Infrastructure failures of any kind surface as
// domain.ErrUpstreamUnavailable, domain errors pass through untouched.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sony/gobreaker/v2"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/metrics"
)

// Config defines guard parameters
type Config struct {
	Name             string
	Timeout          time.Duration // per-call timeout, 0 disables
	FailureThreshold uint32        // consecutive failures opening the breaker
	OpenTimeout      time.Duration // time in open state before a probe is allowed
	MaxRequests      uint32        // probes allowed in half-open state
}

// Guard wraps upstream calls with timeout and circuit breaker
type Guard struct {
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[any]
}

// New makes a guard. Zero threshold defaults to 5 failures.
func New(cfg Config) *Guard {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	metrics.SetBreakerState(cfg.Name, stateValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			lgr.Printf("[WARN] breaker %s changed state %s -> %s", name, from, to)
			metrics.SetBreakerState(name, stateValue(to))
		},
	})
	return &Guard{timeout: cfg.Timeout, cb: cb}
}

// Do runs fn under the guard. op names the operation for errors and metrics.
func (g *Guard) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	_, err := Call(ctx, g, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Call runs fn under the guard and returns its result
func Call[T any](ctx context.Context, g *Guard, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	res, err := g.cb.Execute(func() (any, error) {
		callCtx, cancel := ctx, context.CancelFunc(func() {})
		if g.timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		}
		defer cancel()
		return fn(callCtx)
	})
	if err != nil {
		return zero, g.mapError(ctx, op, err)
	}
	v, ok := res.(T)
	if !ok && res != nil {
		return zero, fmt.Errorf("%s: unexpected result type %T", op, res)
	}
	return v, nil
}

// State returns the breaker state name
func (g *Guard) State() string {
	return g.cb.State().String()
}

func (g *Guard) mapError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordUpstreamFailure(op, "open")
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
	case ctx.Err() != nil:
		// caller gave up, not an upstream failure
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, context.DeadlineExceeded):
		metrics.RecordUpstreamFailure(op, "timeout")
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
	case !isInfraFailure(err):
		return err
	default:
		metrics.RecordUpstreamFailure(op, "error")
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
	}
}

// isSuccessful tells the breaker which results count as healthy calls.
// Domain outcomes like not-found are healthy, so are cancellations by the caller.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	return !isInfraFailure(err)
}

func isInfraFailure(err error) bool {
	kind := domain.KindOf(err)
	return kind == domain.KindInternal || kind == domain.KindUnavailable
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
