// Copyright (c) 2025 BVK Chaitanya

//go:build windows

package sink

import "os"

// ident degrades to file handle equality where device and inode numbers
// are not available.
type ident struct {
	file *os.File
}

func (s *Sink) identity() (ident, bool) {
	if s.file == nil {
		return ident{}, false
	}
	return ident{file: s.file}, true
}

func fileWritable(f *os.File) bool {
	// No fcntl equivalent; probe with a zero-length write.
	_, err := f.Write(nil)
	return err == nil
}

func lockExclusive(f *os.File) (unlock func(), err error) {
	// Advisory whole-file locks are not supported here; appends rely on
	// the O_APPEND atomicity the filesystem provides.
	return func() {}, nil
}
