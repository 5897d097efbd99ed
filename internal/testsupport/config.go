package testsupport

import (
	"path/filepath"
	"testing"

	"qariee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.R2Dir = filepath.Join(base, "r2")
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.AppAssetsDir = filepath.Join(base, "app-assets")
	cfg.Transfer.RetryDelaySeconds = 0

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithCDNBaseURL overrides the fallback CDN endpoint on the test config.
func WithCDNBaseURL(url string) ConfigOption {
	return func(c *config.Config) {
		c.CDN.BaseURL = url
	}
}

// WithVerifyConcurrency overrides the scan pool width on the test config.
func WithVerifyConcurrency(n int) ConfigOption {
	return func(c *config.Config) {
		c.Verify.Concurrency = n
	}
}
