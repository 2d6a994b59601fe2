// Copyright (c) 2025 BVK Chaitanya

// Package sink abstracts writable diagnostic destinations.
//
// A Sink wraps an io.Writer, most commonly an *os.File, and adds the two
// capabilities the diag router needs: a stable identity so aliased
// destinations can be detected, and a locked-append write for files shared
// with other processes.
//
// Identity is the (device, inode) pair of the underlying file where the
// platform supports it; sinks that are not backed by stat-able files fall
// back to writer handle equality, so two distinct in-memory buffers never
// compare identical.
package sink

import (
	"fmt"
	"io"
	"os"
)

// Sink is a writable diagnostic destination.
//
// Writes are unbuffered; every Write reaches the underlying writer before
// returning.
type Sink struct {
	w io.Writer

	// file is non-nil when the sink is backed by an OS file descriptor.
	file *os.File

	// owned is true when Open created the file, in which case Close
	// closes it. Borrowed files (New, inherited descriptors) outlive the
	// sink and are never closed here.
	owned bool
}

// New returns a sink borrowing the given writer. If w is an *os.File the
// sink gains file identity and locked-append support.
func New(w io.Writer) *Sink {
	s := &Sink{w: w}
	if f, ok := w.(*os.File); ok {
		s.file = f
	}
	return s
}

// Open opens (creating if necessary) the named file in append mode and
// returns an owned sink for it.
func Open(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open sink file: %w", err)
	}
	return &Sink{w: f, file: f, owned: true}, nil
}

// File returns the backing file, or nil when the sink is not file-backed.
func (s *Sink) File() *os.File {
	return s.file
}

// Name returns a human-readable identifier for error messages.
func (s *Sink) Name() string {
	if s.file != nil {
		return s.file.Name()
	}
	return fmt.Sprintf("writer(%T)", s.w)
}

// Write writes p to the underlying writer without any locking.
func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// WriteLocked appends p to the sink under an exclusive advisory lock.
//
// When the sink is a regular, writable file the lock is acquired, the file
// offset is moved to the current end-of-file to absorb appends made by
// other lock holders, p is written and the lock is released on all paths.
// Non-file and non-regular sinks have no inter-process contention to guard
// against and are written directly.
func (s *Sink) WriteLocked(p []byte) (int, error) {
	if s.file == nil || !s.isRegular() || !s.Writable() {
		return s.Write(p)
	}
	unlock, err := lockExclusive(s.file)
	if err != nil {
		return 0, fmt.Errorf("could not lock sink %s: %w", s.Name(), err)
	}
	defer unlock()

	if _, err := s.file.Seek(0, io.SeekEnd); err != nil {
		return 0, fmt.Errorf("could not seek to end of sink %s: %w", s.Name(), err)
	}
	return s.file.Write(p)
}

// Close closes the backing file if this sink owns it and is a no-op
// otherwise.
func (s *Sink) Close() error {
	if s.owned && s.file != nil {
		return s.file.Close()
	}
	return nil
}

// Writable reports whether the sink can be written to. File-backed sinks
// are probed through their open descriptor's access mode; other writers
// are writable by construction.
func (s *Sink) Writable() bool {
	if s.w == nil {
		return false
	}
	if s.file != nil {
		return fileWritable(s.file)
	}
	return true
}

// Same reports whether a and b refer to the same physical destination.
//
// Two file-backed sinks are the same when their (device, inode) pairs are
// both defined and equal, even through different descriptors or different
// names for the same file. Sinks without file identity compare by writer
// handle equality.
func Same(a, b *Sink) bool {
	if a == nil || b == nil {
		return false
	}
	ida, aok := a.identity()
	idb, bok := b.identity()
	if aok && bok {
		return ida == idb
	}
	return a.w == b.w
}

func (s *Sink) isRegular() bool {
	fi, err := s.file.Stat()
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
