// Package countries normalizes free-text country input into canonical
// two-letter codes, consulting the REST Countries API when the input is not
// already a code.
package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrUnknownCountry means the input could not be matched to any country.
// Transport and decoding failures are returned as distinct wrapped errors so
// callers can tell an outage from a miss.
var ErrUnknownCountry = errors.New("unknown country")

var codePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

type Resolver struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	log        *logrus.Entry
}

func NewResolver(logger *logrus.Logger, baseURL string) *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		// The lookup API is a shared public service; keep bursts of
		// unresolvable names from hammering it.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		log:     logger.WithField("component", "country_resolver"),
	}
}

// Resolve returns the canonical two-letter code for the input. Inputs that are
// already two alphabetic characters are upper-cased locally without any
// external call.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrUnknownCountry
	}
	if codePattern.MatchString(name) {
		return strings.ToUpper(name), nil
	}
	return r.lookup(ctx, name)
}

func (r *Resolver) lookup(ctx context.Context, name string) (string, error) {
	start := time.Now()
	log := r.log.WithField("name", name)

	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("lookup throttle: %w", err)
	}

	lookupURL := fmt.Sprintf("%s/name/%s?fields=cca2", r.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Country lookup request failed")
		return "", fmt.Errorf("country lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrUnknownCountry
	}
	if resp.StatusCode != http.StatusOK {
		log.WithField("status_code", resp.StatusCode).Error("Country lookup failed")
		return "", fmt.Errorf("country lookup status %d", resp.StatusCode)
	}

	var results []struct {
		CCA2 string `json:"cca2"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.WithError(err).Error("Invalid country lookup response")
		return "", fmt.Errorf("decode lookup response: %w", err)
	}
	if len(results) == 0 || results[0].CCA2 == "" {
		return "", ErrUnknownCountry
	}

	code := strings.ToUpper(results[0].CCA2)
	log.WithFields(logrus.Fields{
		"code":     code,
		"duration": time.Since(start),
	}).Debug("Resolved country name")
	return code, nil
}
