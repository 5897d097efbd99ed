// Package logging assembles the structured slog loggers used across qariee
// commands and services.
//
// It centralizes level parsing, console/JSON handler selection, and output
// plumbing, and exposes a no-op logger plus component tagging helpers so every
// subsystem emits log lines with the same shape.
package logging
