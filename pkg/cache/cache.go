// Package cache provides the ephemeral key-value store holding per-user recommendation state.
// Two backends implement Store: Redis for shared deployments and Badger for a single node.
package cache

import (
	"context"
	"errors"
	"time"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// NoExpiry is reported by TTL for keys without expiration
const NoExpiry time.Duration = -1

// Store is a key-value cache with hashes, sets, counters and per-key expiry.
// All operations on a single key are atomic.
type Store interface {
	// HGetAll returns all fields of a hash, empty map if the key is missing
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	// HReplace deletes the hash and writes fields in one step, empty fields leave the key deleted
	HReplace(ctx context.Context, key string, fields map[string]string) error
	// Del removes keys, missing keys are ignored
	Del(ctx context.Context, keys ...string) error
	// SAdd adds members to a set, ttl > 0 resets the key expiry to exactly ttl
	SAdd(ctx context.Context, key string, ttl time.Duration, members ...string) error
	// SMembers returns set members, empty if the key is missing
	SMembers(ctx context.Context, key string) ([]string, error)
	// IncrCapped increments a counter unless it already reached limit.
	// The expiry is set to ttl only by the increment creating the key.
	// Returns the counter value after the call and whether the increment happened.
	IncrCapped(ctx context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error)
	// GetInt returns counter value, 0 if the key is missing
	GetInt(ctx context.Context, key string) (int64, error)
	// TTL returns remaining lifetime, NoExpiry for persistent keys and 0 for missing keys
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
	Close() error
}

// errCritical marks errors which must not be retried
var errCritical = errors.New("critical cache error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string { return e.err.Error() }

func (e *criticalError) Unwrap() error { return e.err }

func (e *criticalError) Is(target error) bool { return target == errCritical }
