// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diaglog.toml")
	content := `
program = "nightly-backup"
error-file = "/var/log/backup.err"
log-file = "/var/log/backup.log"
debug-level = "trace"
log-level = "1"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Program != "nightly-backup" {
		t.Errorf("want nightly-backup, got %q", cfg.Program)
	}
	if cfg.ErrorFile != "/var/log/backup.err" {
		t.Errorf("unexpected error-file %q", cfg.ErrorFile)
	}
	if cfg.DebugLevel != "trace" {
		t.Errorf("unexpected debug-level %q", cfg.DebugLevel)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("missing config file must be an error")
	}

	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("program = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Errorf("malformed TOML must be an error")
	}
}

func TestNewRouterFromFlags(t *testing.T) {
	t.Setenv("DIAGLOG_DEBUG", "")
	t.Setenv("DIAGLOG_LOG", "")

	dir := t.TempDir()
	flags := &routerFlags{
		program:    "diagtest",
		errorFile:  filepath.Join(dir, "err.log"),
		logFile:    filepath.Join(dir, "ops.log"),
		debugLevel: "trace",
	}

	r, err := flags.newRouter()
	if err != nil {
		t.Fatal(err)
	}
	if r.DebugLevel() != 2 {
		t.Errorf("want debug level 2, got %d", r.DebugLevel())
	}
	if r.LogLevel() != 1 {
		t.Errorf("debug level must imply log level 1, got %d", r.LogLevel())
	}

	if err := r.Warn("flag wiring"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "err.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Errorf("error redirect from flags must receive the warning")
	}
}
