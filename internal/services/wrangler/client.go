package wrangler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"qariee/internal/logging"
)

// ErrBinaryMissing reports that the wrangler CLI is not installed.
var ErrBinaryMissing = errors.New("wrangler CLI not found; install with: npm install -g wrangler")

// Store is the narrow object-store surface orchestration code depends on.
// Alternate backends can be substituted without touching callers.
type Store interface {
	Put(ctx context.Context, localPath, remoteKey string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stdout string, err error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps wrangler CLI interactions for one bucket.
type Client struct {
	binary string
	bucket string
	exec   Executor
	logger *slog.Logger
}

// New constructs a wrangler client.
func New(binary, bucket string, logger *slog.Logger, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "wrangler"
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("bucket name required")
	}
	client := &Client{
		binary: binary,
		bucket: bucket,
		exec:   commandExecutor{},
		logger: logging.NewComponentLogger(logger, "wrangler"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Available reports whether the wrangler binary is on PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// Put uploads a local file to the bucket under remoteKey.
func (c *Client) Put(ctx context.Context, localPath, remoteKey string) error {
	remoteKey = strings.TrimPrefix(strings.TrimSpace(remoteKey), "/")
	if remoteKey == "" {
		return errors.New("remote key required")
	}

	args := []string{"r2", "object", "put", c.bucket + "/" + remoteKey, "--file", localPath}
	if _, err := c.exec.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("put %s: %w", remoteKey, err)
	}

	c.logger.Debug("object uploaded",
		logging.String("remote_key", remoteKey),
		logging.String("local_path", localPath))
	return nil
}

// List returns the object keys under prefix, one per stdout line.
func (c *Client) List(ctx context.Context, prefix string) ([]string, error) {
	args := []string{"r2", "object", "list", c.bucket}
	if strings.TrimSpace(prefix) != "" {
		args = append(args, "--prefix", prefix)
	}

	stdout, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return nil, fmt.Errorf("list prefix %q: %w", prefix, err)
	}

	var keys []string
	for _, line := range strings.Split(stdout, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys, nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.String(), fmt.Errorf("%s %s: %s: %w", binary, args[0], msg, err)
		}
		return stdout.String(), fmt.Errorf("%s %s: %w", binary, args[0], err)
	}
	return stdout.String(), nil
}
