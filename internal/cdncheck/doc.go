// Package cdncheck probes the CDN for expected audio and image objects.
//
// A Checker issues single bounded-timeout existence probes; Scan fans many
// probes out over a fixed-size worker pool and aggregates the results into a
// map keyed by resource, independent of completion order. The report helpers
// reduce a finished scan into per-reciter coverage. Probes never abort a
// batch: transport errors and even panicking probes are converted into
// absent results.
package cdncheck
