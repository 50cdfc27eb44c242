// Package kv abstracts the external key-value store that holds rate-limit
// counters and cached flag URLs. Expiry is delegated to the backend.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or has expired.
var ErrNotFound = errors.New("key not found")

// Store is a minimal get/put-with-expiry view of the backing store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}
