// Package ratelimit implements a fixed-window request counter backed by the
// external key-value store, so limits hold across process restarts and
// replicas.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sdko-org/flag-proxy/internal/kv"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "ratelimit:"

// FallbackIdentifier keys requests whose client address cannot be determined.
const FallbackIdentifier = "unknown"

type Limiter struct {
	store  kv.Store
	max    int
	window time.Duration
	log    *logrus.Entry
}

func New(logger *logrus.Logger, store kv.Store, max int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
		log:    logger.WithField("component", "rate_limiter"),
	}
}

// Limited reports whether the identifier has exhausted its window. When not
// limited, the counter is incremented and its TTL reset to the full window.
// Refreshing the TTL on every increment means a window under sustained traffic
// only resets after a full quiet window; this approximation is intentional.
//
// Store errors are returned to the caller, which fails the request rather than
// letting traffic through unmetered.
func (l *Limiter) Limited(ctx context.Context, identifier string) (bool, error) {
	if identifier == "" {
		identifier = FallbackIdentifier
	}
	key := keyPrefix + identifier

	count := 0
	val, err := l.store.Get(ctx, key)
	switch {
	case err == nil:
		count, err = strconv.Atoi(val)
		if err != nil {
			l.log.WithFields(logrus.Fields{"key": key, "value": val}).
				Warn("Corrupt rate limit counter, resetting")
			count = 0
		}
	case errors.Is(err, kv.ErrNotFound):
		// First request in the window.
	default:
		return false, fmt.Errorf("rate limit lookup: %w", err)
	}

	if count >= l.max {
		return true, nil
	}

	if err := l.store.Put(ctx, key, strconv.Itoa(count+1), l.window); err != nil {
		return false, fmt.Errorf("rate limit update: %w", err)
	}
	return false, nil
}
