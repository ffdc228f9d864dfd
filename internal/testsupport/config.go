package testsupport

import (
	"path/filepath"
	"testing"

	"dupescan/internal/config"
)

// NewConfig produces a config seeded with a unique temp log directory per test
// and a single digest worker so scan behavior is deterministic.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Scan.Workers = 1
	return &cfg
}
