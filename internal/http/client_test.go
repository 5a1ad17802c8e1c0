package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<Banners/>"))
	}))
	defer srv.Close()

	c := NewClient(WithUserAgent("test-agent"))
	body, err := c.GetString(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "<Banners/>" {
		t.Errorf("body = %q", body)
	}
	if gotUA != "test-agent" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "test-agent")
	}
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient()
	tests := []struct {
		name   string
		method string
		call   func(url string) error
	}{
		{"download", http.MethodGet, func(url string) error {
			_, err := c.DownloadBytes(context.Background(), url)
			return err
		}},
		{"file size", http.MethodHead, func(url string) error {
			_, err := c.GetFileSize(context.Background(), url)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(srv.URL + "/missing.jpg")

			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *StatusError", err)
			}
			if se.StatusCode != http.StatusNotFound {
				t.Errorf("StatusCode = %d, want 404", se.StatusCode)
			}
			if se.Method != tt.method {
				t.Errorf("Method = %q, want %q", se.Method, tt.method)
			}
			if !strings.HasPrefix(se.Error(), tt.method+" ") {
				t.Errorf("Error() = %q, want %s prefix", se.Error(), tt.method)
			}
		})
	}
}

func TestClient_GetFileSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		w.Header().Set("Content-Length", "1234")
	}))
	defer srv.Close()

	size, err := NewClient().GetFileSize(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 1234 {
		t.Errorf("size = %d, want 1234", size)
	}
}

func TestClient_RateLimit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := NewClient(WithRateLimit(20))
	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := c.Get(context.Background(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Burst of 1 at 20 rps: the 2nd and 3rd requests wait ~50ms each.
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("3 requests took %v, expected rate limiting", elapsed)
	}
	if hits.Load() != 3 {
		t.Errorf("hits = %d, want 3", hits.Load())
	}
}

func TestClient_RateLimitCancelled(t *testing.T) {
	c := NewClient(WithRateLimit(0.001))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Get(ctx, "http://127.0.0.1:1"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
