// Copyright (c) 2025 BVK Chaitanya

package logdir

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestOpenCreatesDatedFile(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir, "diagtest")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	name := s.File().Name()
	if !strings.Contains(name, "diagtest-") || !strings.HasSuffix(name, ".log") {
		t.Fatalf("unexpected log file name %q", name)
	}
	if _, err := fileTime("diagtest", strings.TrimPrefix(name, dir+"/")); err != nil {
		t.Fatalf("file name must embed a parseable timestamp: %v", err)
	}
}

func TestOpenReusesRecentFile(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(dir, "diagtest")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Write([]byte("one\n")); err != nil {
		t.Fatal(err)
	}
	a.Close()

	b, err := Open(dir, "diagtest")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Write([]byte("two\n")); err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if a.File().Name() != b.File().Name() {
		t.Fatalf("want reuse of %q, got %q", a.File().Name(), b.File().Name())
	}
	data, err := os.ReadFile(b.File().Name())
	if err != nil {
		t.Fatal(err)
	}
	if want := "one\ntwo\n"; string(data) != want {
		t.Fatalf("want %q, got %q", want, data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("want a single reused log file, got %d", len(entries))
	}
}

func TestOpenRotatesOverSizeLimit(t *testing.T) {
	dir := t.TempDir()

	defer func(v int64) { FileSizeLimitMB = v }(FileSizeLimitMB)
	FileSizeLimitMB = 0 // every existing file is over the cap

	a, err := Open(dir, "diagtest")
	if err != nil {
		t.Fatal(err)
	}
	a.Close()

	// Make sure the fresh file gets a distinct timestamped name.
	time.Sleep(1100 * time.Millisecond)

	b, err := Open(dir, "diagtest")
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if a.File().Name() == b.File().Name() {
		t.Fatalf("size-capped file must not be reused")
	}
}
