package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCDN()
	c.normalizeStore()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.R2Dir, err = ExpandPath(c.Paths.R2Dir); err != nil {
		return fmt.Errorf("paths.r2_dir: %w", err)
	}
	if c.Paths.StagingDir, err = ExpandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.AppAssetsDir, err = ExpandPath(c.Paths.AppAssetsDir); err != nil {
		return fmt.Errorf("paths.app_assets_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCDN() {
	c.CDN.BaseURL = strings.TrimRight(strings.TrimSpace(c.CDN.BaseURL), "/")
	if c.CDN.BaseURL == "" {
		c.CDN.BaseURL = defaultCDNBaseURL
	}
}

func (c *Config) normalizeStore() {
	c.Store.Bucket = strings.TrimSpace(c.Store.Bucket)
	if c.Store.Bucket == "" {
		c.Store.Bucket = defaultStoreBucket
	}
	c.Store.Binary = strings.TrimSpace(c.Store.Binary)
	if c.Store.Binary == "" {
		c.Store.Binary = defaultStoreBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// ExpandPath resolves tilde shortcuts and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			trimmed = home
		} else {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}
