// Copyright (c) 2025 BVK Chaitanya

/*
Package logdir opens diagnostic sinks as timestamped, size-capped log
files in a given directory.

Within FileNameReuseInterval a new Open will append to the most recent
matching log file instead of creating another one, so a program in a
crash-loop does not fill the directory (and exhaust filesystem inodes)
with near-empty files. A file at or above FileSizeLimitMB always forces a
fresh file.

The returned sinks are regular append-mode files, so the router's
per-write locking and device+inode aliasing detection apply to them as to
any other file sink.
*/
package logdir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bvk/diaglog/sink"
)

var (
	// FileNameReuseInterval contains the time interval during which Open
	// will append to the most recent existing log file if present.
	FileNameReuseInterval = time.Hour

	// FileNameTimeLocation contains the timezone for the timestamp in
	// the log file names.
	FileNameTimeLocation = time.UTC

	// FileSizeLimitMB contains the maximum size limit for the log files.
	FileSizeLimitMB int64 = 100

	// FileMode contains the file mode and permissions value for the log
	// files.
	FileMode = os.FileMode(0600)
)

// Open returns an owned sink on a log file named `<logname>-<timestamp>.log`
// in dirname, reusing the most recent file within FileNameReuseInterval
// when it is still below the size limit.
func Open(dirname, logname string) (*sink.Sink, error) {
	fpath, err := pickFile(dirname, logname, time.Now())
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, FileMode)
	if err != nil {
		return nil, fmt.Errorf("could not open/create log file: %w", err)
	}
	f.Close()
	s, err := sink.Open(fpath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func fileName(logname string, at time.Time) string {
	at = at.In(FileNameTimeLocation)
	return fmt.Sprintf("%s-%s.log", logname, at.Format("20060102-150405"))
}

func fileTime(logname, name string) (time.Time, error) {
	return time.ParseInLocation(logname+"-20060102-150405.log", name, FileNameTimeLocation)
}

// pickFile returns the path Open should use: the newest reusable file
// within the reuse interval and under the size cap, or a fresh dated
// name.
func pickFile(dirname, logname string, now time.Time) (string, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return "", fmt.Errorf("could not read log directory: %w", err)
	}

	var newest time.Time
	var found bool
	for _, entry := range entries {
		ts, err := fileTime(logname, entry.Name())
		if err != nil {
			continue
		}
		if !found || ts.After(newest) {
			newest, found = ts, true
		}
	}

	if found && now.Sub(newest) < FileNameReuseInterval {
		fpath := filepath.Join(dirname, fileName(logname, newest))
		finfo, err := os.Stat(fpath)
		if err != nil {
			return "", fmt.Errorf("could not stat log file: %w", err)
		}
		if finfo.Size() < FileSizeLimitMB*1024*1024 {
			return fpath, nil
		}
	}
	return filepath.Join(dirname, fileName(logname, now)), nil
}
