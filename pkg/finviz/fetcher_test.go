package finviz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"screenerwatch/pkg/finviz"
)

// go test -v --run TestFetch
func TestFetch(t *testing.T) {
	const page = `<html><body><table class="screener_table"></table></body></html>`

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	fetcher := finviz.NewFetcher(srv.URL, "screenerwatch/1.0", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	body, err := fetcher.Fetch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != page {
		t.Errorf("unexpected body: %q", body)
	}
	if gotUA != "screenerwatch/1.0" {
		t.Errorf("expected user agent header, got %q", gotUA)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	fetcher := finviz.NewFetcher(srv.URL, "screenerwatch/1.0", 5*time.Second)

	_, err := fetcher.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for non-200 status, got nil")
	}
	if !errors.Is(err, finviz.ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server already gone

	fetcher := finviz.NewFetcher(srv.URL, "screenerwatch/1.0", 1*time.Second)

	_, err := fetcher.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected transport error, got nil")
	}
	if !errors.Is(err, finviz.ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
}
