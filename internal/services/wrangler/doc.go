// Package wrangler mediates access to the wrangler CLI that fronts the R2
// object store.
//
// It normalizes command invocation behind a narrow Store interface (put one
// object, list a prefix) and exposes a testable Executor seam so orchestration
// code never shells out directly. Prefer this package over ad-hoc
// exec.Command usage when touching the bucket so argument construction and
// error reporting stay consistent.
package wrangler
