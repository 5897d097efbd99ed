package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the directory layout the CLI operates on.
type Paths struct {
	// R2Dir is the local mirror of the CDN bucket (metadata + images).
	R2Dir string `toml:"r2_dir"`
	// StagingDir holds transient per-run download directories.
	StagingDir string `toml:"staging_dir"`
	// LogDir receives the CLI log file.
	LogDir string `toml:"log_dir"`
	// AppAssetsDir is where generate-db writes the bundled database.
	AppAssetsDir string `toml:"app_assets_dir"`
}

// CDN contains settings for the public content delivery endpoint.
type CDN struct {
	// BaseURL is the fallback CDN base URL; the catalog document's
	// settings.cdn_base_url takes precedence when present.
	BaseURL string `toml:"base_url"`
}

// Store contains settings for the wrangler-backed object store.
type Store struct {
	Bucket string `toml:"bucket"`
	Binary string `toml:"binary"`
}

// Transfer contains the download retry policy for upload-audio runs.
type Transfer struct {
	MaxRetries        int `toml:"max_retries"`
	RetryDelaySeconds int `toml:"retry_delay_seconds"`
	TimeoutSeconds    int `toml:"timeout_seconds"`
}

// Verify contains settings for CDN existence scans.
type Verify struct {
	Concurrency    int `toml:"concurrency"`
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for qariee.
type Config struct {
	Paths    Paths    `toml:"paths"`
	CDN      CDN      `toml:"cdn"`
	Store    Store    `toml:"store"`
	Transfer Transfer `toml:"transfer"`
	Verify   Verify   `toml:"verify"`
	Logging  Logging  `toml:"logging"`
}

// CatalogPath returns the location of the db.json catalog document inside the
// local R2 mirror.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.Paths.R2Dir, "metadata", "db.json")
}

// ImagesDir returns the reciter image directory inside the local R2 mirror.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.Paths.R2Dir, "images", "reciters")
}

// LogPath returns the CLI log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.LogDir, "qariee.log")
}

// EnsureDirectories creates the directories the CLI writes to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.StagingDir,
		c.Paths.LogDir,
		filepath.Dir(c.CatalogPath()),
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/qariee/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return value
// is the resolved path, the third reports whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("qariee.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}
