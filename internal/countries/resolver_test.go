package countries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestResolver(baseURL string) *Resolver {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewResolver(logger, baseURL)
}

func TestResolveCodeShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected lookup call for %s", r.URL.Path)
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)

	for _, tc := range []struct{ in, want string }{
		{"US", "US"},
		{"us", "US"},
		{"  fr  ", "FR"},
		{"De", "DE"},
	} {
		got, err := r.Resolve(context.Background(), tc.in)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveNameViaLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/name/France" {
			t.Errorf("path = %q, want /name/France", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"cca2":"fr"},{"cca2":"mq"}]`))
	}))
	defer srv.Close()

	got, err := newTestResolver(srv.URL).Resolve(context.Background(), "France")
	if err != nil {
		t.Fatal(err)
	}
	if got != "FR" {
		t.Errorf("got %q, want FR (first candidate, upper-cased)", got)
	}
}

func TestResolveUnknownName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestResolver(srv.URL).Resolve(context.Background(), "Atlantis")
	if !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("got %v, want ErrUnknownCountry", err)
	}
}

func TestResolveEmptyResultSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestResolver(srv.URL).Resolve(context.Background(), "Nowhere")
	if !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("got %v, want ErrUnknownCountry", err)
	}
}

func TestResolveMissingCodeField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"France"}]`))
	}))
	defer srv.Close()

	_, err := newTestResolver(srv.URL).Resolve(context.Background(), "France")
	if !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("got %v, want ErrUnknownCountry", err)
	}
}

func TestResolveServiceOutageIsNotUnknownCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestResolver(srv.URL).Resolve(context.Background(), "France")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrUnknownCountry) {
		t.Error("outage conflated with unknown country")
	}
}

func TestResolveEmptyInput(t *testing.T) {
	_, err := newTestResolver("http://127.0.0.1:0").Resolve(context.Background(), "   ")
	if !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("got %v, want ErrUnknownCountry", err)
	}
}
