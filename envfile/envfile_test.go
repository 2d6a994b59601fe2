// Copyright (c) 2025 BVK Chaitanya

package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "test.env", `
# diagnostic defaults
DEBUG=trace

LOG = 1
`)

	t.Setenv("DIAGLOG_DEBUG", "")
	t.Setenv("DIAGLOG_LOG", "")
	os.Unsetenv("DIAGLOG_DEBUG")
	os.Unsetenv("DIAGLOG_LOG")

	err := Load("test.env", SearchDir(dir), VariableNamePrefix("DIAGLOG_"))
	if err != nil {
		t.Fatal(err)
	}
	if v := os.Getenv("DIAGLOG_DEBUG"); v != "trace" {
		t.Errorf("want trace, got %q", v)
	}
	if v := os.Getenv("DIAGLOG_LOG"); v != "1" {
		t.Errorf("want 1, got %q", v)
	}
}

func TestLoadKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "test.env", "DEBUG=2\n")

	t.Setenv("DIAGLOG_DEBUG", "0")

	if err := Load("test.env", SearchDir(dir), VariableNamePrefix("DIAGLOG_")); err != nil {
		t.Fatal(err)
	}
	if v := os.Getenv("DIAGLOG_DEBUG"); v != "0" {
		t.Errorf("existing value must win without OverwriteIfExists, got %q", v)
	}

	if err := Load("test.env", SearchDir(dir), VariableNamePrefix("DIAGLOG_"), OverwriteIfExists(true)); err != nil {
		t.Fatal(err)
	}
	if v := os.Getenv("DIAGLOG_DEBUG"); v != "2" {
		t.Errorf("OverwriteIfExists must replace the value, got %q", v)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load("does-not-exist.env", SearchDir(t.TempDir())); err != nil {
		t.Fatalf("missing env file is not an error: %v", err)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if err := Load("a/b.env", SearchDir(dir)); err == nil {
		t.Errorf("file names with separators must be rejected")
	}

	writeEnvFile(t, dir, "broken.env", "NOEQUALS\n")
	if err := Load("broken.env", SearchDir(dir)); err == nil {
		t.Errorf("assignments without '=' must be rejected")
	}

	writeEnvFile(t, dir, "badname.env", "9BAD=1\n")
	if err := Load("badname.env", SearchDir(dir)); err == nil {
		t.Errorf("invalid variable names must be rejected")
	}
}
