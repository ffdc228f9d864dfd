// Package config loads, validates, and normalizes dupescan configuration.
//
// Configuration is optional: a scan works with built-in defaults and a root
// path alone. When a TOML file exists at ~/.config/dupescan/config.toml (or
// ./dupescan.toml as a project-local fallback) it tunes the log directory,
// digest chunk size, worker pool bounds, and log output.
package config
