package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCDN(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateTransfer(); err != nil {
		return err
	}
	if err := c.validateVerify(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCDN() error {
	url := strings.TrimSpace(c.CDN.BaseURL)
	if url == "" {
		return errors.New("cdn.base_url must be set")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("cdn.base_url must be an http(s) URL, got %q", url)
	}
	return nil
}

func (c *Config) validateStore() error {
	if strings.TrimSpace(c.Store.Bucket) == "" {
		return errors.New("store.bucket must be set")
	}
	return nil
}

func (c *Config) validateTransfer() error {
	if c.Transfer.MaxRetries < 1 {
		return errors.New("transfer.max_retries must be at least 1")
	}
	if c.Transfer.RetryDelaySeconds < 0 {
		return errors.New("transfer.retry_delay_seconds must not be negative")
	}
	if c.Transfer.TimeoutSeconds < 1 {
		return errors.New("transfer.timeout_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateVerify() error {
	if c.Verify.Concurrency < 1 {
		return errors.New("verify.concurrency must be at least 1")
	}
	if c.Verify.TimeoutSeconds < 1 {
		return errors.New("verify.timeout_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
