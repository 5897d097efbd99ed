package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"qariee/internal/logging"
)

// Reciter is one audio-content provider entry in the catalog.
type Reciter struct {
	ID             string `json:"id"`
	NameEN         string `json:"name_en"`
	NameAR         string `json:"name_ar"`
	ColorPrimary   string `json:"color_primary"`
	ColorSecondary string `json:"color_secondary"`
}

// Settings carries app-facing metadata published alongside the reciter list.
type Settings struct {
	CDNBaseURL    string `json:"cdn_base_url,omitempty"`
	AppName       string `json:"app_name,omitempty"`
	SupportEmail  string `json:"support_email,omitempty"`
	AppVersion    string `json:"app_version,omitempty"`
	MinAppVersion string `json:"min_app_version,omitempty"`
}

// Document is the full db.json shape.
type Document struct {
	Version  string    `json:"version"`
	Settings Settings  `json:"settings"`
	Reciters []Reciter `json:"reciters"`
}

// Store provides locked access to the catalog document on disk.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewStore creates a catalog store for the given db.json path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Path returns the on-disk document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the catalog document.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("catalog document %s: %w", s.path, ErrNoDocument)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	return &doc, nil
}

// Save persists the document with stable formatting: two-space indent,
// unescaped UTF-8 (Arabic names stay readable), trailing newline. The write
// is atomic via a temp-file rename.
func (s *Store) Save(doc *Document) error {
	if doc == nil {
		return errors.New("catalog document is nil")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp catalog: %w", err)
	}
	return nil
}

// withLock runs fn while holding the advisory catalog lock.
func (s *Store) withLock(fn func() error) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()
	return fn()
}

// CDNBaseURL returns the CDN endpoint from the document settings, falling
// back to the supplied default when the document is absent or silent.
func (s *Store) CDNBaseURL(fallback string) string {
	doc, err := s.Load()
	if err != nil {
		return fallback
	}
	if url := strings.TrimRight(strings.TrimSpace(doc.Settings.CDNBaseURL), "/"); url != "" {
		return url
	}
	return fallback
}
