package cdncheck

import (
	"context"
	"net/http"
	"time"
)

// Key identifies one probed CDN resource. Surah is zero for image probes.
type Key struct {
	ReciterID string
	Surah     int
}

// ProbeResult is the outcome of a single existence probe. StatusCode is zero
// when the request failed before any response arrived.
type ProbeResult struct {
	Key        Key
	Present    bool
	StatusCode int
}

// Checker issues existence probes against CDN URLs. It is safe for
// concurrent use; all probes share one client.
type Checker struct {
	client *http.Client
}

// NewChecker constructs a Checker. A nil client uses http.DefaultTransport
// with redirect following.
func NewChecker(client *http.Client) *Checker {
	if client == nil {
		client = &http.Client{}
	}
	return &Checker{client: client}
}

// Probe issues a metadata-only HEAD request and reports whether the resource
// exists. Only HTTP 200 counts as present; any other status or transport
// error is absent. Probe never returns an error, only a result.
func (c *Checker) Probe(ctx context.Context, key Key, url string, timeout time.Duration) ProbeResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return ProbeResult{Key: key}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ProbeResult{Key: key}
	}
	defer resp.Body.Close()

	return ProbeResult{
		Key:        key,
		Present:    resp.StatusCode == http.StatusOK,
		StatusCode: resp.StatusCode,
	}
}
