package flagurl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sdko-org/flag-proxy/internal/kv"
	"github.com/sirupsen/logrus"
)

type countingStore struct {
	kv.Store
	puts int
}

func (c *countingStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	c.puts++
	return c.Store.Put(ctx, key, value, ttl)
}

func newTestBuilder(t *testing.T) (*Builder, *countingStore) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	store := &countingStore{Store: kv.NewMemoryStore()}
	b := NewBuilder(logger, store, "https://res.cloudinary.com", "demo", DefaultAssets(), 24*time.Hour)
	return b, store
}

func TestBuildURLShape(t *testing.T) {
	b, _ := newTestBuilder(t)
	ctx := context.Background()

	for _, tc := range []struct {
		code, width, height, format string
		want                        string
	}{
		{"US", "auto", "auto", "svg",
			"https://res.cloudinary.com/demo/image/upload/flags/us.svg"},
		{"US", "256", "auto", "svg",
			"https://res.cloudinary.com/demo/image/upload/w_256/flags/us.svg"},
		{"FR", "256", "128", "png",
			"https://res.cloudinary.com/demo/image/upload/w_256,h_128,f_png,q_auto/flags/fr.png"},
		{"DE", "auto", "auto", "webp",
			"https://res.cloudinary.com/demo/image/upload/f_webp,q_auto/flags/de.webp"},
	} {
		got, err := b.GetOrBuild(ctx, tc.code, tc.width, tc.height, tc.format)
		if err != nil {
			t.Fatalf("GetOrBuild(%s): %v", tc.code, err)
		}
		if got != tc.want {
			t.Errorf("GetOrBuild(%s/%s/%s/%s)\n got  %s\n want %s",
				tc.code, tc.width, tc.height, tc.format, got, tc.want)
		}
	}
}

func TestBuildUnmappedCountry(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.GetOrBuild(context.Background(), "XX", "auto", "auto", "svg")
	if !errors.Is(err, ErrNoAsset) {
		t.Errorf("got %v, want ErrNoAsset", err)
	}
}

func TestBuildIsIdempotentWithinBucket(t *testing.T) {
	b, store := newTestBuilder(t)
	ctx := context.Background()

	first, err := b.GetOrBuild(ctx, "US", "256", "auto", "svg")
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.GetOrBuild(ctx, "US", "256", "auto", "svg")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("URLs differ within one bucket: %q vs %q", first, second)
	}
	if store.puts != 1 {
		t.Errorf("store writes = %d, want 1 (second call must be a cache hit)", store.puts)
	}
}

func TestCacheKeyRollsOverWithBucket(t *testing.T) {
	b, store := newTestBuilder(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return base }

	b.GetOrBuild(ctx, "US", "auto", "auto", "svg")

	b.now = func() time.Time { return base.Add(25 * time.Hour) }
	b.GetOrBuild(ctx, "US", "auto", "auto", "svg")

	if store.puts != 2 {
		t.Errorf("store writes = %d, want 2 (new bucket must miss)", store.puts)
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"svg", "png", "jpg", "jpeg", "webp", "gif"} {
		if !ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = false, want true", f)
		}
	}
	for _, f := range []string{"bmp", "tiff", "SVG", "", "exe"} {
		if ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = true, want false", f)
		}
	}
}

func TestDefaultAssetsReturnsCopy(t *testing.T) {
	a := DefaultAssets()
	a["US"] = "tampered"

	if DefaultAssets()["US"] == "tampered" {
		t.Error("DefaultAssets shares state between calls")
	}
}
