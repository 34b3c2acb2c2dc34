package fetcher

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

func testFetcher(t *testing.T, handler http.HandlerFunc) (Fetcher, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := New(config.DocumentConfig{TimeoutSeconds: 5}, nil, logger.New("error"))
	return f, srv
}

func TestFetch(t *testing.T) {
	body := []byte("%PDF-1.5 fake document bytes")

	var gotAgent string
	f, srv := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write(body)
	})

	data, err := f.Fetch(context.Background(), srv.URL+"/paper.pdf")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !bytes.Equal(data, body) {
		t.Errorf("Fetch() = %q, want %q", data, body)
	}
	if gotAgent != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, userAgent)
	}
}

func TestFetchNotFound(t *testing.T) {
	f, srv := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := f.Fetch(context.Background(), srv.URL+"/missing.pdf")
	if err == nil {
		t.Fatal("Fetch() should fail on 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Fetch() error = %v, want status in message", err)
	}
}

func TestFetchServerError(t *testing.T) {
	f, srv := testFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() should fail on 500")
	}
}

func TestFetchBadURL(t *testing.T) {
	f := New(config.DocumentConfig{TimeoutSeconds: 5}, nil, logger.New("error"))
	if _, err := f.Fetch(context.Background(), "://not-a-url"); err == nil {
		t.Error("Fetch() should fail for an unparsable URL")
	}
}
