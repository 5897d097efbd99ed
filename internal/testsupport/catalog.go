package testsupport

import (
	"testing"

	"qariee/internal/catalog"
	"qariee/internal/config"
)

// SeedCatalog writes a catalog document with the given reciters at the
// config's catalog path and returns the backing store.
func SeedCatalog(t testing.TB, cfg *config.Config, reciters ...catalog.Reciter) *catalog.Store {
	t.Helper()

	store := catalog.NewStore(cfg.CatalogPath(), nil)
	doc := &catalog.Document{
		Version: "1.0.0",
		Settings: catalog.Settings{
			CDNBaseURL: cfg.CDN.BaseURL,
		},
		Reciters: reciters,
	}
	if err := store.Save(doc); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return store
}
