// Package flagurl builds Cloudinary delivery URLs for country flags and
// caches them in the key-value store under time-bucketed keys.
package flagurl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sdko-org/flag-proxy/internal/kv"
	"github.com/sirupsen/logrus"
)

// ErrNoAsset means the country code has no entry in the asset table. A missing
// entry is a hard error; there is no default flag.
var ErrNoAsset = errors.New("no asset mapping for country")

const (
	uploadPath     = "/image/upload/"
	cacheKeyPrefix = "flagurl:"

	// VectorFormat is the default delivery format. Vector output gets no
	// format or quality directives.
	VectorFormat = "svg"

	// AutoDimension leaves the corresponding directive out of the URL.
	AutoDimension = "auto"
)

var rasterFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
	"gif":  true,
}

// ValidFormat reports whether the format is deliverable: the default vector
// format or one of the allow-listed raster formats.
func ValidFormat(format string) bool {
	return format == VectorFormat || rasterFormats[format]
}

type Builder struct {
	store     kv.Store
	assets    map[string]string
	baseURL   string
	cloudName string
	ttl       time.Duration
	log       *logrus.Entry
	now       func() time.Time
}

func NewBuilder(logger *logrus.Logger, store kv.Store, baseURL, cloudName string, assets map[string]string, ttl time.Duration) *Builder {
	owned := make(map[string]string, len(assets))
	for code, id := range assets {
		owned[code] = id
	}
	return &Builder{
		store:     store,
		assets:    owned,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		cloudName: cloudName,
		ttl:       ttl,
		log:       logger.WithField("component", "url_builder"),
		now:       time.Now,
	}
}

// TTL returns the cache retention period, which doubles as the time bucket
// width.
func (b *Builder) TTL() time.Duration {
	return b.ttl
}

// GetOrBuild returns the delivery URL for the country code and display
// parameters, from cache when possible. Width, height and format are opaque
// beyond the format allow-list; malformed dimensions are passed through for
// the CDN to reject.
//
// The cache key includes the current time bucket, so entries roll over
// deterministically without explicit invalidation. A store failure degrades to
// rebuilding the URL; it never fails the request.
func (b *Builder) GetOrBuild(ctx context.Context, code, width, height, format string) (string, error) {
	key := b.cacheKey(code, width, height, format)

	cached, err := b.store.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		b.log.WithError(err).WithField("key", key).Warn("URL cache read failed")
	}

	asset, ok := b.assets[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoAsset, code)
	}

	built := b.build(asset, width, height, format)

	if err := b.store.Put(ctx, key, built, b.ttl); err != nil {
		b.log.WithError(err).WithField("key", key).Warn("URL cache write failed")
	}
	return built, nil
}

func (b *Builder) build(asset, width, height, format string) string {
	var transforms []string
	if width != AutoDimension {
		transforms = append(transforms, "w_"+width)
	}
	if height != AutoDimension {
		transforms = append(transforms, "h_"+height)
	}

	ext := VectorFormat
	if rasterFormats[format] {
		transforms = append(transforms, "f_"+format)
		ext = format
	}
	if format != VectorFormat {
		transforms = append(transforms, "q_auto")
	}

	segment := ""
	if len(transforms) > 0 {
		segment = strings.Join(transforms, ",") + "/"
	}

	return b.baseURL + "/" + b.cloudName + uploadPath + segment + asset + "." + ext
}

func (b *Builder) cacheKey(code, width, height, format string) string {
	bucket := b.now().Unix() / int64(b.ttl.Seconds())
	return fmt.Sprintf("%s%s:%s:%s:%s:%d", cacheKeyPrefix, code, width, height, format, bucket)
}
