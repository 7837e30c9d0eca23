package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	httptransport "github.com/go-openapi/runtime/client"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	transport := httptransport.New(u.Host, "/api", []string{"http"})
	transport.DefaultAuthentication = httptransport.APIKeyAuth(apiKeyHeader, "header", "secret")
	return NewWithTransport(transport, time.Second)
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/vehicles/191-D-12345" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get(apiKeyHeader); got != "secret" {
			t.Errorf("api key header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"registration":"191-D-12345","make":"Toyota","model":"RAV4","year":2019,"type":"SUV"}`))
	})

	rec, err := client.Lookup(context.Background(), "191-D-12345")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.Make != "Toyota" || rec.Model != "RAV4" || rec.Year != 2019 || rec.Type != domain.SUV {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestClient_LookupUnknownTypeFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"registration":"12-KY-99","make":"Piaggio","year":2012,"type":"Scooter"}`))
	})

	rec, err := client.Lookup(context.Background(), "12-KY-99")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.Type != domain.Standard {
		t.Errorf("type = %s, want Standard", rec.Type)
	}
}

func TestClient_LookupNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Lookup(context.Background(), "00-X-1")
	if !errors.Is(err, domain.ErrLookupNotFound) {
		t.Fatalf("expected ErrLookupNotFound, got %v", err)
	}
	if domain.IsKind(err, domain.KindNetwork) {
		t.Error("not found must not be a network error")
	}
}

func TestClient_LookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"missing required fields", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"model":"Corolla"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			if _, err := client.Lookup(context.Background(), "191-D-12345"); !domain.IsKind(err, domain.KindNetwork) {
				t.Errorf("expected network error, got %v", err)
			}
		})
	}
}
