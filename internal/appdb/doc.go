// Package appdb generates the SQLite database bundled with the mobile app.
//
// The build is a deterministic bulk load: reciters come from the catalog
// document, the surah table from the fixed reference data, and app_metadata
// records the catalog version the snapshot was generated from. Each build
// replaces the previous database file wholesale.
package appdb
