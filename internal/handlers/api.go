package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sdko-org/flag-proxy/internal/countries"
	"github.com/sdko-org/flag-proxy/internal/flagurl"
)

// HandleGetFlag serves GET /api/getFlag?country=&width=&height=&format=.
// The response carries a URL pointing back at this service's /flag/ route, so
// clients always fetch through the proxy's own caching path. The CDN URL is
// still built here to validate the mapping and warm the URL cache.
func (h *Handler) HandleGetFlag(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	country := query.Get("country")
	if country == "" {
		writeError(w, http.StatusBadRequest, "Missing country parameter")
		return
	}

	width := query.Get("width")
	if width == "" {
		width = flagurl.AutoDimension
	}
	height := query.Get("height")
	if height == "" {
		height = flagurl.AutoDimension
	}
	format := query.Get("format")
	if format == "" {
		format = flagurl.VectorFormat
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

	if _, err := h.builder.GetOrBuild(r.Context(), code, width, height, format); err != nil {
		if errors.Is(err, flagurl.ErrNoAsset) {
			writeError(w, http.StatusInternalServerError, "No flag available for country")
			return
		}
		h.log.WithError(err).Error("URL build failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	secureURL := fmt.Sprintf("%s://%s/flag/%s/%s/%s/%s",
		requestScheme(r), r.Host, code, width, height, format)

	writeJSON(w, http.StatusOK, apiResponse{
		Success:   true,
		Status:    http.StatusOK,
		Country:   code,
		SecureURL: secureURL,
	})
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
