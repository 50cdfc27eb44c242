package storage

import (
	"context"
	"time"
)

// Storage caches fetched flag image bytes. Entries carry their own expiry;
// expired entries are treated as misses and removed by the purger.
type Storage interface {
	Get(ctx context.Context, key string) (content []byte, contentType string, err error)
	Put(ctx context.Context, key string, content []byte, country, contentType string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
