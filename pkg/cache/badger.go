package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-pkgz/repeater/v2"
)

// BadgerStore implements Store with an embedded badger database.
// Hashes and sets are stored as JSON documents, counters as decimal strings.
// Concurrent writers of the same key are serialized by badger's optimistic
// transactions, conflicting transactions are retried.
type BadgerStore struct {
	db    *badger.DB
	retry *repeater.Repeater
	now   func() time.Time
}

// NewBadgerStore opens badger at path, empty path makes an in-memory store
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", path, err)
	}
	return NewBadgerStoreWithDB(db), nil
}

// NewBadgerStoreWithDB wraps an opened badger database
func NewBadgerStoreWithDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{
		db:    db,
		retry: repeater.NewBackoff(50, time.Millisecond, repeater.WithMaxDelay(50*time.Millisecond)),
		now:   time.Now,
	}
}

// HGetAll returns all fields of a hash
func (s *BadgerStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	res := map[string]string{}
	err := s.db.View(func(txn *badger.Txn) error {
		found, err := s.getJSON(txn, key, &res)
		if err != nil || !found {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return res, nil
}

// HReplace writes the whole hash in one transaction
func (s *BadgerStore) HReplace(ctx context.Context, key string, fields map[string]string) error {
	err := s.update(ctx, func(txn *badger.Txn) error {
		if len(fields) == 0 {
			return txn.Delete([]byte(key))
		}
		data, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("marshal hash: %w", err)
		}
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("replace hash %s: %w", key, err)
	}
	return nil
}

// Del removes keys
func (s *BadgerStore) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.update(ctx, func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("del %v: %w", keys, err)
	}
	return nil
}

// SAdd adds members to the set and optionally resets its expiry
func (s *BadgerStore) SAdd(ctx context.Context, key string, ttl time.Duration, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	err := s.update(ctx, func(txn *badger.Txn) error {
		var current []string
		item, err := s.getItem(txn, key)
		if err != nil {
			return err
		}
		if item != nil {
			if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &current) }); err != nil {
				return fmt.Errorf("unmarshal set: %w", err)
			}
		}

		set := make(map[string]struct{}, len(current)+len(members))
		for _, m := range current {
			set[m] = struct{}{}
		}
		for _, m := range members {
			set[m] = struct{}{}
		}
		merged := make([]string, 0, len(set))
		for m := range set {
			merged = append(merged, m)
		}
		sort.Strings(merged)

		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("marshal set: %w", err)
		}
		entry := badger.NewEntry([]byte(key), data)
		switch {
		case ttl > 0:
			entry = entry.WithTTL(ttl)
		case item != nil:
			entry.ExpiresAt = item.ExpiresAt()
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("sadd %s: %w", key, err)
	}
	return nil
}

// SMembers returns set members
func (s *BadgerStore) SMembers(_ context.Context, key string) ([]string, error) {
	res := []string{}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := s.getJSON(txn, key, &res)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	return res, nil
}

// IncrCapped increments the counter below limit, keeping the expiry set at creation
func (s *BadgerStore) IncrCapped(ctx context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error) {
	var value int64
	var incremented bool
	err := s.update(ctx, func(txn *badger.Txn) error {
		value, incremented = 0, false
		item, err := s.getItem(txn, key)
		if err != nil {
			return err
		}
		if item != nil {
			if value, err = itemInt(item); err != nil {
				return err
			}
		}
		if value >= limit {
			return nil
		}
		value++
		entry := badger.NewEntry([]byte(key), []byte(strconv.FormatInt(value, 10)))
		switch {
		case item != nil:
			entry.ExpiresAt = item.ExpiresAt()
		case ttl > 0:
			entry = entry.WithTTL(ttl)
		}
		if err := txn.SetEntry(entry); err != nil {
			return err
		}
		incremented = true
		return nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("incr capped %s: %w", key, err)
	}
	return value, incremented, nil
}

// GetInt returns counter value
func (s *BadgerStore) GetInt(_ context.Context, key string) (int64, error) {
	var value int64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := s.getItem(txn, key)
		if err != nil || item == nil {
			return err
		}
		value, err = itemInt(item)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// TTL returns remaining lifetime of the key, with second precision
func (s *BadgerStore) TTL(_ context.Context, key string) (time.Duration, error) {
	var ttl time.Duration
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := s.getItem(txn, key)
		if err != nil || item == nil {
			return err
		}
		if item.ExpiresAt() == 0 {
			ttl = NoExpiry
			return nil
		}
		ttl = time.Unix(int64(item.ExpiresAt()), 0).Sub(s.now()) //nolint:gosec // expiry fits int64
		if ttl < 0 {
			ttl = 0
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("ttl %s: %w", key, err)
	}
	return ttl, nil
}

// Ping reports closed database
func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger is closed")
	}
	return nil
}

// Close closes badger database
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// update runs fn in a read-write transaction, retrying on transaction conflicts
func (s *BadgerStore) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	err := s.retry.Do(ctx, func() error {
		err := s.db.Update(fn)
		if err != nil && !errors.Is(err, badger.ErrConflict) {
			return &criticalError{err: err}
		}
		return err
	}, errCritical)
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// getItem returns nil item for missing keys
func (s *BadgerStore) getItem(txn *badger.Txn, key string) (*badger.Item, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// getJSON unmarshals the value of key into v, reports whether the key exists
func (s *BadgerStore) getJSON(txn *badger.Txn, key string, v interface{}) (bool, error) {
	item, err := s.getItem(txn, key)
	if err != nil || item == nil {
		return false, err
	}
	if err := item.Value(func(val []byte) error { return json.Unmarshal(val, v) }); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func itemInt(item *badger.Item) (int64, error) {
	var value int64
	err := item.Value(func(val []byte) error {
		v, err := strconv.ParseInt(string(val), 10, 64)
		if err != nil {
			return fmt.Errorf("parse counter: %w", err)
		}
		value = v
		return nil
	})
	return value, err
}
