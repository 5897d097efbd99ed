// Package catalog reads and mutates the db.json reciter catalog that mirrors
// the metadata/db.json object on the CDN.
//
// The document is the source of truth for reciter display metadata and
// carries a semantic version that every mutation bumps. Writes go through an
// advisory file lock and an atomic temp-file rename so concurrent CLI
// invocations never interleave partial documents.
package catalog
