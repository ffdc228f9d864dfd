package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite must refuse to clobber the file.
	if _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestConfigShow(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, []string{"config", "show", "--config", cfgPath}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[scan]")
	requireContains(t, out, "workers = 1")
	requireContains(t, out, "[logging]")
}

func TestConfigPath(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, []string{"config", "path", "--config", cfgPath}, "")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, cfgPath)

	t.Setenv("HOME", t.TempDir())
	out, err = runCLI(t, []string{"config", "path"}, "")
	if err != nil {
		t.Fatalf("config path without file: %v", err)
	}
	requireContains(t, out, "defaults in effect")
}
