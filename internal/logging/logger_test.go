package logging

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dupescan/internal/config"
)

func TestConsoleHandlerOutput(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")

	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}

	scoped := NewComponentLogger(logger, "scanner")
	scoped.Info("scan complete", Args(
		String(FieldRoot, "/tmp/data"),
		Int("duplicate_groups", 3),
		Error(errors.New("boom")),
	)...)
	scoped.Debug("suppressed at info level")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "INFO scanner: scan complete") {
		t.Fatalf("missing component-prefixed message, got %q", out)
	}
	if !strings.Contains(out, "root=/tmp/data") {
		t.Fatalf("missing root attribute, got %q", out)
	}
	if !strings.Contains(out, "duplicate_groups=3") {
		t.Fatalf("missing int attribute, got %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Fatalf("missing error attribute, got %q", out)
	}
	if strings.Contains(out, "suppressed") {
		t.Fatalf("debug line should be filtered at info level, got %q", out)
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.json")

	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}
	logger.Warn("skipping unreadable entry", Args(String(FieldPath, "/denied"))...)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if record["level"] != "warn" {
		t.Fatalf("level: got %v, want warn", record["level"])
	}
	if record["msg"] != "skipping unreadable entry" {
		t.Fatalf("msg: got %v", record["msg"])
	}
	if record["path"] != "/denied" {
		t.Fatalf("path: got %v", record["path"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("missing ts key")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "dupescan.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing message: %q", data)
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("nop logger should never be enabled")
	}
	// Must not panic.
	NewComponentLogger(nil, "anything").Error("discarded")
}
