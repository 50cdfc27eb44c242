package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sdko-org/flag-proxy/internal/kv"
	"github.com/sirupsen/logrus"
)

func newTestLimiter(max int) (*Limiter, *kv.MemoryStore) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	store := kv.NewMemoryStore()
	return New(logger, store, max, 900*time.Second), store
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(100)
	ctx := context.Background()

	for i := 1; i <= 100; i++ {
		limited, err := l.Limited(ctx, "1.2.3.4")
		if err != nil {
			t.Fatal(err)
		}
		if limited {
			t.Fatalf("request %d limited, want allowed", i)
		}
	}

	limited, err := l.Limited(ctx, "1.2.3.4")
	if err != nil {
		t.Fatal(err)
	}
	if !limited {
		t.Error("request 101 allowed, want limited")
	}
}

func TestLimiterIsolatesIdentifiers(t *testing.T) {
	l, _ := newTestLimiter(1)
	ctx := context.Background()

	if limited, _ := l.Limited(ctx, "a"); limited {
		t.Fatal("first request for a limited")
	}
	if limited, _ := l.Limited(ctx, "b"); limited {
		t.Error("first request for b limited, counters not isolated")
	}
	if limited, _ := l.Limited(ctx, "a"); !limited {
		t.Error("second request for a allowed, want limited")
	}
}

func TestLimiterEmptyIdentifierUsesFallback(t *testing.T) {
	l, store := newTestLimiter(5)
	ctx := context.Background()

	if _, err := l.Limited(ctx, ""); err != nil {
		t.Fatal(err)
	}

	val, err := store.Get(ctx, keyPrefix+FallbackIdentifier)
	if err != nil {
		t.Fatalf("fallback counter missing: %v", err)
	}
	if val != "1" {
		t.Errorf("fallback counter = %q, want %q", val, "1")
	}
}

func TestLimiterDoesNotIncrementOnceLimited(t *testing.T) {
	l, store := newTestLimiter(2)
	ctx := context.Background()

	l.Limited(ctx, "c")
	l.Limited(ctx, "c")
	l.Limited(ctx, "c")
	l.Limited(ctx, "c")

	val, _ := store.Get(ctx, keyPrefix+"c")
	if val != "2" {
		t.Errorf("counter = %q, want %q (rejections must not mutate state)", val, "2")
	}
}

func TestLimiterCorruptCounterResets(t *testing.T) {
	l, store := newTestLimiter(1)
	ctx := context.Background()

	store.Put(ctx, keyPrefix+"d", "not-a-number", time.Minute)

	limited, err := l.Limited(ctx, "d")
	if err != nil {
		t.Fatal(err)
	}
	if limited {
		t.Error("corrupt counter treated as over limit")
	}
	val, _ := store.Get(ctx, keyPrefix+"d")
	if val != "1" {
		t.Errorf("counter = %q, want reset to %q", val, "1")
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("store down")
}

func (failingStore) Put(context.Context, string, string, time.Duration) error {
	return errors.New("store down")
}

func TestLimiterPropagatesStoreErrors(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	l := New(logger, failingStore{}, 100, time.Minute)

	if _, err := l.Limited(context.Background(), "e"); err == nil {
		t.Error("expected error from failing store")
	}
}
