// Package surah holds the fixed 114-entry surah reference table and the
// canonical zero-padded identifier format used in CDN object keys.
package surah
