package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"qariee/internal/logging"
)

// ErrNotFound reports that the origin definitively does not have the
// resource. Fetch returns it after a single attempt, without retrying.
var ErrNotFound = errors.New("resource not found at origin")

const fetchChunkSize = 8 * 1024

// FetchOptions configures the retry policy for one download.
type FetchOptions struct {
	// MaxRetries is the total number of attempts, including the first.
	MaxRetries int
	// RetryDelay is the fixed wait between attempts.
	RetryDelay time.Duration
	// Timeout bounds each individual attempt.
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// DefaultFetchOptions mirrors the origin servers' observed behavior: three
// attempts, two seconds apart, a minute per attempt.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		Timeout:    60 * time.Second,
	}
}

// Fetch downloads url to dest, creating parent directories as needed. The
// body streams to dest+".partial" and is renamed into place only after the
// full body is written, so a failed attempt never leaves a corrupt file for
// the next stage. A 404 fails immediately; other HTTP errors and transport
// faults are retried up to the configured ceiling.
func Fetch(ctx context.Context, url, dest string, opts FetchOptions) error {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	logger := logging.NewComponentLogger(opts.Logger, "transfer")

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		if attempt > 1 {
			logger.Warn("retrying download",
				logging.String("url", url),
				logging.Int("attempt", attempt),
				logging.Error(lastErr))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.RetryDelay):
			}
		}

		err := fetchOnce(ctx, client, url, dest, opts.Timeout)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNotFound) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("download failed after %d attempts: %w", opts.MaxRetries, lastErr)
}

func fetchOnce(ctx context.Context, client *http.Client, url, dest string, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", url, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request %s: unexpected status %d", url, resp.StatusCode)
	}

	partial := dest + ".partial"
	file, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}

	buf := make([]byte, fetchChunkSize)
	if _, err := io.CopyBuffer(file, resp.Body, buf); err != nil {
		file.Close()
		os.Remove(partial)
		return fmt.Errorf("stream body: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(partial)
		return fmt.Errorf("close staging file: %w", err)
	}

	if err := os.Rename(partial, dest); err != nil {
		os.Remove(partial)
		return fmt.Errorf("finalize download: %w", err)
	}
	return nil
}
