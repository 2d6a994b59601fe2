// Copyright (c) 2025 BVK Chaitanya

//go:build !windows

package sink

import (
	"os"

	"golang.org/x/sys/unix"
)

// ident is the stable identity of a file-backed sink.
type ident struct {
	dev uint64
	ino uint64
}

func (s *Sink) identity() (ident, bool) {
	if s.file == nil {
		return ident{}, false
	}
	var st unix.Stat_t
	if err := unix.Fstat(int(s.file.Fd()), &st); err != nil {
		return ident{}, false
	}
	return ident{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}

func fileWritable(f *os.File) bool {
	flags, err := unix.FcntlInt(f.Fd(), unix.F_GETFL, 0)
	if err != nil {
		return false
	}
	mode := flags & unix.O_ACCMODE
	return mode == unix.O_WRONLY || mode == unix.O_RDWR
}

func lockExclusive(f *os.File) (unlock func(), err error) {
	fd := int(f.Fd())
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		return nil, err
	}
	return func() { unix.Flock(fd, unix.LOCK_UN) }, nil
}
