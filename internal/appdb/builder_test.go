package appdb_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"qariee/internal/appdb"
	"qariee/internal/catalog"
	"qariee/internal/surah"
)

func testDocument() *catalog.Document {
	return &catalog.Document{
		Version: "1.2.3",
		Reciters: []catalog.Reciter{
			{ID: "hussary", NameEN: "Al-Hussary", NameAR: "الحصري", ColorPrimary: "#4A90E2", ColorSecondary: "#8CB4FF"},
			{ID: "minshawi", NameEN: "Al-Minshawi", NameAR: "المنشاوي", ColorPrimary: "#27AE60", ColorSecondary: "#6FCF97"},
		},
	}
}

func TestBuildPopulatesAllTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")

	stats, err := appdb.Build(context.Background(), path, testDocument(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.Reciters != 2 || stats.Surahs != surah.Count || stats.DataVersion != "1.2.3" {
		t.Fatalf("stats = %+v", stats)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open generated db: %v", err)
	}
	defer db.Close()

	var reciters, surahs, downloads int
	if err := db.QueryRow("SELECT COUNT(*) FROM reciters").Scan(&reciters); err != nil {
		t.Fatalf("count reciters: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM surahs").Scan(&surahs); err != nil {
		t.Fatalf("count surahs: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM downloads").Scan(&downloads); err != nil {
		t.Fatalf("count downloads: %v", err)
	}
	if reciters != 2 || surahs != surah.Count || downloads != 0 {
		t.Errorf("rows: reciters=%d surahs=%d downloads=%d", reciters, surahs, downloads)
	}

	var dataVersion, schemaVersion string
	if err := db.QueryRow("SELECT value FROM app_metadata WHERE key = 'data_version'").Scan(&dataVersion); err != nil {
		t.Fatalf("read data_version: %v", err)
	}
	if err := db.QueryRow("SELECT value FROM app_metadata WHERE key = 'schema_version'").Scan(&schemaVersion); err != nil {
		t.Fatalf("read schema_version: %v", err)
	}
	if dataVersion != "1.2.3" || schemaVersion != appdb.SchemaVersion {
		t.Errorf("metadata: data_version=%s schema_version=%s", dataVersion, schemaVersion)
	}

	var nameAR string
	if err := db.QueryRow("SELECT name_ar FROM surahs WHERE number = 1").Scan(&nameAR); err != nil {
		t.Fatalf("read surah 1: %v", err)
	}
	if nameAR != "الفاتحة" {
		t.Errorf("surah 1 name_ar = %q", nameAR)
	}
}

func TestBuildReplacesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")

	if _, err := appdb.Build(context.Background(), path, testDocument(), nil); err != nil {
		t.Fatalf("first build: %v", err)
	}

	smaller := &catalog.Document{Version: "2.0.0", Reciters: testDocument().Reciters[:1]}
	if _, err := appdb.Build(context.Background(), path, smaller, nil); err != nil {
		t.Fatalf("second build: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM reciters").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("second build kept stale rows: %d reciters", count)
	}
}
