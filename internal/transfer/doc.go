// Package transfer moves per-surah audio files from an origin server to the
// CDN object store.
//
// Fetch downloads one resource with bounded retries, streaming through a
// partial file so an interrupted attempt never leaves a corrupt download
// visible. The Orchestrator drives a surah range through fetch, upload, and
// staging cleanup, aggregating per-item outcomes into a run summary. A 404
// from the origin is a confirmed-absent signal and is never retried;
// transient transport and server errors are.
package transfer
