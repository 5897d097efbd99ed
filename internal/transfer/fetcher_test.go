package transfer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func testFetchOptions() FetchOptions {
	return FetchOptions{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
		Timeout:    time.Second,
	}
}

func TestFetchWritesFullBody(t *testing.T) {
	body := []byte("surah audio payload")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "nested", "dir", "001.mp3")
	if err := Fetch(context.Background(), srv.URL, dest, testFetchOptions()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("destination content mismatch: %q", got)
	}
	if _, err := os.Stat(dest + ".partial"); !errors.Is(err, os.ErrNotExist) {
		t.Error("partial file left behind after success")
	}
}

func TestFetchNotFoundDoesNotRetry(t *testing.T) {
	var attempts int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	opts := testFetchOptions()
	opts.RetryDelay = time.Hour // a retry would hang the test

	start := time.Now()
	err := Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x.mp3"), opts)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n := atomic.LoadInt64(&attempts); n != 1 {
		t.Errorf("404 fetched %d times, want exactly 1", n)
	}
	if time.Since(start) > time.Second {
		t.Error("404 path incurred a retry delay")
	}
}

func TestFetchRetriesTransientThenSucceeds(t *testing.T) {
	var attempts int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&attempts, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "001.mp3")
	if err := Fetch(context.Background(), srv.URL, dest, testFetchOptions()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if n := atomic.LoadInt64(&attempts); n != 3 {
		t.Errorf("made %d attempts, want 3", n)
	}
	if got, _ := os.ReadFile(dest); string(got) != "ok" {
		t.Errorf("destination content = %q", got)
	}
}

func TestFetchExhaustsRetries(t *testing.T) {
	var attempts int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "001.mp3")
	err := Fetch(context.Background(), srv.URL, dest, testFetchOptions())
	if err == nil {
		t.Fatal("expected failure after exhausting retries")
	}
	if n := atomic.LoadInt64(&attempts); n != 3 {
		t.Errorf("made %d attempts, want 3", n)
	}
	if _, statErr := os.Stat(dest); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("failed fetch left a file at the destination")
	}
}

func TestFetchTruncatedBodyLeavesNoDestination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declaring more bytes than are written makes the server drop the
		// connection mid-body, so the client sees a truncated stream.
		w.Header().Set("Content-Length", "1024")
		_, _ = w.Write([]byte("short"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "001.mp3")
	opts := testFetchOptions()
	opts.MaxRetries = 1
	if err := Fetch(context.Background(), srv.URL, dest, opts); err == nil {
		t.Fatal("expected truncated body to fail")
	}
	if _, err := os.Stat(dest); !errors.Is(err, os.ErrNotExist) {
		t.Error("corrupt download visible at destination")
	}
	if _, err := os.Stat(dest + ".partial"); !errors.Is(err, os.ErrNotExist) {
		t.Error("partial file left behind after failure")
	}
}
