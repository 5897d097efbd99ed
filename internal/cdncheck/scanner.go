package cdncheck

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"qariee/internal/logging"
)

// DefaultConcurrency bounds simultaneously in-flight probes when the caller
// does not specify a pool width.
const DefaultConcurrency = 10

// DefaultProbeTimeout bounds each individual probe.
const DefaultProbeTimeout = 5 * time.Second

// ScanOptions configures a Scan run.
type ScanOptions struct {
	Concurrency int
	Timeout     time.Duration
	// Progress, when set, is invoked after every completed probe with the
	// number of finished probes and the total. Calls arrive from the
	// collector goroutine, never concurrently.
	Progress func(done, total int)
	Logger   *slog.Logger
}

// Scan probes every key over a worker pool of at most opts.Concurrency
// in-flight requests and returns one result per submitted key. Completion
// order is irrelevant: the returned map is keyed by resource. A probe that
// panics is recorded as absent rather than aborting the batch.
func (c *Checker) Scan(ctx context.Context, keys []Key, makeURL func(Key) string, opts ScanOptions) map[Key]ProbeResult {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultProbeTimeout
	}
	logger := logging.NewComponentLogger(opts.Logger, "cdncheck")

	jobs := make(chan Key, len(keys))
	for _, key := range keys {
		jobs <- key
	}
	close(jobs)

	results := make(chan ProbeResult, len(keys))

	workers := opts.Concurrency
	if workers > len(keys) {
		workers = len(keys)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				results <- c.safeProbe(ctx, key, makeURL, opts.Timeout, logger)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make(map[Key]ProbeResult, len(keys))
	done := 0
	for result := range results {
		collected[result.Key] = result
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(keys))
		}
	}
	return collected
}

// safeProbe shields the pool from a panicking probe or URL builder,
// converting the fault into an absent result.
func (c *Checker) safeProbe(ctx context.Context, key Key, makeURL func(Key) string, timeout time.Duration, logger *slog.Logger) (result ProbeResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("probe fault",
				logging.String("reciter_id", key.ReciterID),
				logging.Int("surah", key.Surah),
				slog.Any("panic", r))
			result = ProbeResult{Key: key}
		}
	}()
	return c.Probe(ctx, key, makeURL(key), timeout)
}
