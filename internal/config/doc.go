// Package config loads, normalizes, and validates qariee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates every knob the CLI needs: the
// local R2 mirror layout, CDN base URL, wrangler bucket, transfer retry
// policy, and verification concurrency.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
