package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sdko-org/flag-proxy/internal/cdn"
	"github.com/sdko-org/flag-proxy/internal/config"
	"github.com/sdko-org/flag-proxy/internal/countries"
	"github.com/sdko-org/flag-proxy/internal/flagurl"
	"github.com/sdko-org/flag-proxy/internal/storage"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	cfg      *config.Config
	resolver *countries.Resolver
	builder  *flagurl.Builder
	cdn      *cdn.Client
	store    storage.Storage // nil disables the byte cache
	log      *logrus.Entry
}

func NewHandler(logger *logrus.Logger, cfg *config.Config, resolver *countries.Resolver, builder *flagurl.Builder, cdnClient *cdn.Client, store storage.Storage) *Handler {
	return &Handler{
		cfg:      cfg,
		resolver: resolver,
		builder:  builder,
		cdn:      cdnClient,
		store:    store,
		log:      logger.WithField("component", "flag_handler"),
	}
}

// HandleFlag serves GET /flag/{country}/{width?}/{height?}/{format?},
// streaming the flag image through the proxy. Missing trailing segments
// default to auto/auto/svg.
func (h *Handler) HandleFlag(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/flag/"), "/")
	parts := strings.Split(path, "/")
	if path == "" || len(parts) > 4 {
		writeError(w, http.StatusBadRequest, "Invalid flag path")
		return
	}

	country := parts[0]
	width, height, format := flagurl.AutoDimension, flagurl.AutoDimension, flagurl.VectorFormat
	if len(parts) > 1 {
		width = parts[1]
	}
	if len(parts) > 2 {
		height = parts[2]
	}
	if len(parts) > 3 {
		format = parts[3]
	}

	if !flagurl.ValidFormat(format) {
		writeError(w, http.StatusBadRequest, "Unsupported image format")
		return
	}

	code, err := h.resolver.Resolve(r.Context(), country)
	if err != nil {
		if !errors.Is(err, countries.ErrUnknownCountry) {
			h.log.WithError(err).WithField("country", country).Error("Country resolution failed")
		}
		writeError(w, http.StatusBadRequest, "Invalid country")
		return
	}

	imageURL, err := h.builder.GetOrBuild(r.Context(), code, width, height, format)
	if err != nil {
		if errors.Is(err, flagurl.ErrNoAsset) {
			h.log.WithField("country", code).Warn("No asset mapping")
			writeError(w, http.StatusInternalServerError, "No flag available for country")
			return
		}
		h.log.WithError(err).Error("URL build failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.streamImage(w, r, code, imageURL)
}

func (h *Handler) streamImage(w http.ResponseWriter, r *http.Request, code, imageURL string) {
	ctx := r.Context()
	cacheKey := byteCacheKey(imageURL)

	if h.store != nil {
		content, contentType, err := h.store.Get(ctx, cacheKey)
		if err == nil {
			h.log.WithFields(logrus.Fields{"country": code, "source": "cache"}).Info("Serving flag")
			h.writeImageHeaders(w, contentType)
			w.Write(content)
			return
		}
	}

	resp, err := h.cdn.Fetch(ctx, imageURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		h.log.WithFields(logrus.Fields{
			"url":         imageURL,
			"status_code": resp.StatusCode,
		}).Warn("Upstream returned non-success status")
		writeError(w, resp.StatusCode, "Upstream fetch failed")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	h.log.WithFields(logrus.Fields{"country": code, "source": "cdn"}).Info("Serving flag")

	if h.store == nil {
		h.writeImageHeaders(w, contentType)
		io.Copy(w, resp.Body)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.WithError(err).Error("Failed to read upstream body")
		writeError(w, http.StatusInternalServerError, "Failed to fetch image")
		return
	}

	if err := h.store.Put(ctx, cacheKey, body, code, contentType, h.cfg.URLCacheTTL); err != nil {
		h.log.WithError(err).Warn("Failed to cache image bytes")
	}

	h.writeImageHeaders(w, contentType)
	w.Write(body)
}

func (h *Handler) writeImageHeaders(w http.ResponseWriter, contentType string) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.builder.TTL().Seconds())))
	setCORSHeaders(w.Header())
	w.WriteHeader(http.StatusOK)
}

func byteCacheKey(imageURL string) string {
	sum := sha256.Sum256([]byte(imageURL))
	return "images/" + hex.EncodeToString(sum[:])
}
