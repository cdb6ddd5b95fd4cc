package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("store: key not found")

// Store is the only persistence surface in the system. Every collection is a
// whole JSON value under a fixed string key; writes replace the prior value
// in full. Concurrent writers race with last-write-wins — there is no
// versioning and no merge.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Load reads and decodes the value under key. A missing key, a read error,
// or corrupt JSON all yield def: storage corruption never surfaces to
// callers, it is silently replaced by the seeded default.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Save encodes v and fully replaces whatever was stored under key.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
