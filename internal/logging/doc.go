// Package logging assembles the structured slog loggers used across dupescan.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers plus a no-op logger for tests and
// wiring code that cannot fail. Log output goes to stderr (and optionally a
// log file) so the duplicate report on stdout stays clean.
package logging
