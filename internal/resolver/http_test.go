package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPResolverSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("preference"); got != "nearest" {
			t.Errorf("preference = %q, want nearest", got)
		}
		if got := r.URL.Query().Get("source"); got != "outdoor" {
			t.Errorf("source = %q, want outdoor", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","imagery_id":"pano-1","lat":39.93,"lng":32.86}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, 2*time.Second)
	res, err := r.Resolve(context.Background(), 39.9334, 32.8597, 1500)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res == nil || res.ImageryID != "pano-1" {
		t.Fatalf("result = %+v, want pano-1", res)
	}
}

func TestHTTPResolverZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS"}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, 2*time.Second)
	res, err := r.Resolve(context.Background(), 39.9334, 32.8597, 1500)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res != nil {
		t.Errorf("result = %+v, want nil for no panorama", res)
	}
}

func TestHTTPResolverServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, 2*time.Second)
	if _, err := r.Resolve(context.Background(), 39.9334, 32.8597, 1500); err == nil {
		t.Error("expected error on 502 response")
	}
}
