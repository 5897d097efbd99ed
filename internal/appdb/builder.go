package appdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"qariee/internal/catalog"
	"qariee/internal/logging"
	"qariee/internal/surah"
)

const schema = `
CREATE TABLE IF NOT EXISTS reciters (
    id TEXT PRIMARY KEY,
    name_en TEXT NOT NULL,
    name_ar TEXT NOT NULL,
    color_primary TEXT NOT NULL,
    color_secondary TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS surahs (
    number INTEGER PRIMARY KEY,
    name_ar TEXT NOT NULL,
    name_en TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS downloads (
    reciter_id TEXT NOT NULL,
    surah_number INTEGER NOT NULL,
    local_file_path TEXT NOT NULL,
    downloaded_at TEXT NOT NULL,
    PRIMARY KEY (reciter_id, surah_number),
    FOREIGN KEY (reciter_id) REFERENCES reciters(id),
    FOREIGN KEY (surah_number) REFERENCES surahs(number)
);

CREATE TABLE IF NOT EXISTS app_metadata (
    key TEXT PRIMARY KEY,
    value TEXT
);
`

// SchemaVersion is recorded in app_metadata so the app can detect
// incompatible snapshots.
const SchemaVersion = "1"

// Stats reports what a build inserted.
type Stats struct {
	Reciters    int
	Surahs      int
	DataVersion string
}

// Build writes a fresh app database at path from the given catalog document.
// Any existing file at path is replaced.
func Build(ctx context.Context, path string, doc *catalog.Document, logger *slog.Logger) (Stats, error) {
	var stats Stats
	if doc == nil {
		return stats, errors.New("catalog document is nil")
	}
	logger = logging.NewComponentLogger(logger, "appdb")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return stats, fmt.Errorf("remove previous database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return stats, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return stats, fmt.Errorf("apply pragma: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return stats, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if stats.Reciters, err = insertReciters(ctx, tx, doc.Reciters); err != nil {
		return Stats{}, err
	}
	if stats.Surahs, err = insertSurahs(ctx, tx); err != nil {
		return Stats{}, err
	}
	if err = insertMetadata(ctx, tx, doc.Version); err != nil {
		return Stats{}, err
	}
	stats.DataVersion = doc.Version

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit: %w", err)
	}

	logger.Info("app database generated",
		logging.String("path", path),
		logging.Int("reciters", stats.Reciters),
		logging.String("data_version", stats.DataVersion))
	return stats, nil
}

func insertReciters(ctx context.Context, tx *sql.Tx, reciters []catalog.Reciter) (int, error) {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO reciters (id, name_en, name_ar, color_primary, color_secondary) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare reciter insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range reciters {
		if _, err := stmt.ExecContext(ctx, r.ID, r.NameEN, r.NameAR, r.ColorPrimary, r.ColorSecondary); err != nil {
			return 0, fmt.Errorf("insert reciter %s: %w", r.ID, err)
		}
	}
	return len(reciters), nil
}

func insertSurahs(ctx context.Context, tx *sql.Tx) (int, error) {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO surahs (number, name_ar, name_en) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare surah insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range surah.Names {
		if _, err := stmt.ExecContext(ctx, s.Number, s.Arabic, s.English); err != nil {
			return 0, fmt.Errorf("insert surah %d: %w", s.Number, err)
		}
	}
	return len(surah.Names), nil
}

func insertMetadata(ctx context.Context, tx *sql.Tx, dataVersion string) error {
	for _, kv := range [][2]string{
		{"data_version", dataVersion},
		{"schema_version", SchemaVersion},
	} {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO app_metadata (key, value) VALUES (?, ?)", kv[0], kv[1]); err != nil {
			return fmt.Errorf("insert metadata %s: %w", kv[0], err)
		}
	}
	return nil
}
