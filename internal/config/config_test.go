package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qariee/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected no config file at %s", path)
	}
	if cfg.CDN.BaseURL != "https://qariee-storage.y3f.me" {
		t.Errorf("unexpected default cdn base url: %s", cfg.CDN.BaseURL)
	}
	if cfg.Verify.Concurrency != 10 {
		t.Errorf("unexpected default verify concurrency: %d", cfg.Verify.Concurrency)
	}
	if cfg.Transfer.MaxRetries != 3 {
		t.Errorf("unexpected default max retries: %d", cfg.Transfer.MaxRetries)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath := filepath.Join(home, "config.toml")
	content := `
[paths]
r2_dir = "~/r2"
staging_dir = "~/staging"
log_dir = "~/logs"
app_assets_dir = "~/assets"

[cdn]
base_url = "https://cdn.example.com/"

[verify]
concurrency = 4
timeout_seconds = 2
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.CDN.BaseURL != "https://cdn.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.CDN.BaseURL)
	}
	if !strings.HasPrefix(cfg.Paths.R2Dir, home) {
		t.Errorf("expected tilde expansion under %s, got %s", home, cfg.Paths.R2Dir)
	}
	if cfg.Verify.Concurrency != 4 {
		t.Errorf("verify.concurrency = %d, want 4", cfg.Verify.Concurrency)
	}
	if cfg.CatalogPath() != filepath.Join(cfg.Paths.R2Dir, "metadata", "db.json") {
		t.Errorf("unexpected catalog path: %s", cfg.CatalogPath())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad cdn url", func(c *config.Config) { c.CDN.BaseURL = "ftp://example.com" }},
		{"empty bucket", func(c *config.Config) { c.Store.Bucket = " " }},
		{"zero retries", func(c *config.Config) { c.Transfer.MaxRetries = 0 }},
		{"zero concurrency", func(c *config.Config) { c.Verify.Concurrency = 0 }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath := filepath.Join(home, "sample.toml")
	if err := os.WriteFile(cfgPath, []byte(config.SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, _, _, err := config.Load(cfgPath); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
