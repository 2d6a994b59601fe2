// Copyright (c) 2025 BVK Chaitanya

// Package diag implements a diagnostic-message router.
//
// The router owns three rebindable output channels -- Error,
// OperationalLog and Debug -- plus RawError, the process's original error
// destination preserved from before any redirection. Every diagnostic call
// is stamped with a fixed `[ctime]   pid program TAG: ` prefix on each
// line and delivered to the channels its kind selects, writing at most
// once per physical sink: channels frequently alias (all three default to
// the process's standard streams) and aliases are detected through
// device+inode identity so merged logs never carry doubled lines.
//
// Verbosity is controlled by two levels: the debug level (0=off, 1=debug,
// 2=debug+trace) and the log level (0=off, 1=on). Enabling debug implies
// logging. Both levels seed from the DIAGLOG_DEBUG and DIAGLOG_LOG
// environment variables, which accept symbolic tokens (no/yes/on/off/
// trace, ...) as well as numbers.
//
// Appends to regular files are wrapped in an exclusive advisory lock with
// a seek to end-of-file, so multiple processes can share one log file
// without interleaving partial lines.
package diag

import (
	"sync"

	"github.com/bvk/diaglog/sink"
)

var (
	defaultOnce   sync.Once
	defaultRouter *Router
)

// Default returns the process-wide router, creating it with default
// options on first use.
func Default() *Router {
	defaultOnce.Do(func() {
		defaultRouter = New(nil)
	})
	return defaultRouter
}

// Warn routes a warn-kind event through the default router.
func Warn(args ...any) error {
	return Default().dispatch(warnKind, pkgCallDepth, args)
}

// Warnf routes a formatted warn-kind event through the default router.
func Warnf(format string, args ...any) error {
	return Default().dispatch(warnKind, pkgCallDepth, sprintfArgs(format, args))
}

// Fatal routes a die-kind event through the default router and terminates
// the process.
func Fatal(args ...any) {
	r := Default()
	r.dispatch(dieKind, pkgCallDepth, args)
	r.exit(1)
}

// Fatalf routes a formatted die-kind event through the default router and
// terminates the process.
func Fatalf(format string, args ...any) {
	r := Default()
	r.dispatch(dieKind, pkgCallDepth, sprintfArgs(format, args))
	r.exit(1)
}

// Log routes a log event through the default router.
func Log(args ...any) error {
	return Default().dispatch(logKind, pkgCallDepth, args)
}

// Logf routes a formatted log event through the default router.
func Logf(format string, args ...any) error {
	return Default().dispatch(logKind, pkgCallDepth, sprintfArgs(format, args))
}

// Debug routes a debug event through the default router.
func Debug(args ...any) error {
	return Default().dispatch(debugKind, pkgCallDepth, args)
}

// Debugf routes a formatted debug event through the default router.
func Debugf(format string, args ...any) error {
	return Default().dispatch(debugKind, pkgCallDepth, sprintfArgs(format, args))
}

// Trace routes a trace event through the default router.
func Trace(args ...any) error {
	return Default().dispatch(traceKind, pkgCallDepth, args)
}

// Tracef routes a formatted trace event through the default router.
func Tracef(format string, args ...any) error {
	return Default().dispatch(traceKind, pkgCallDepth, sprintfArgs(format, args))
}

// SetDebugLevel sets the default router's debug level.
func SetDebugLevel(v int) int { return Default().SetDebugLevel(v) }

// SetLogLevel sets the default router's log level.
func SetLogLevel(v int) int { return Default().SetLogLevel(v) }

// DebugLevel returns the default router's debug level.
func DebugLevel() int { return Default().DebugLevel() }

// LogLevel returns the default router's log level.
func LogLevel() int { return Default().LogLevel() }

// RedirectError rebinds the default router's Error channel.
func RedirectError(s *sink.Sink) error { return Default().RedirectError(s) }

// RedirectLog rebinds the default router's OperationalLog channel.
func RedirectLog(s *sink.Sink) error { return Default().RedirectLog(s) }

// RedirectDebug rebinds the default router's Debug channel.
func RedirectDebug(s *sink.Sink) error { return Default().RedirectDebug(s) }

// IsErrorSink reports whether s aliases the default router's Error sink.
func IsErrorSink(s *sink.Sink) bool { return Default().IsErrorSink(s) }

// IsLogSink reports whether s aliases the default router's OperationalLog
// sink.
func IsLogSink(s *sink.Sink) bool { return Default().IsLogSink(s) }

// IsDebugSink reports whether s aliases the default router's Debug sink.
func IsDebugSink(s *sink.Sink) bool { return Default().IsDebugSink(s) }

// IsDefaultOutput reports whether s aliases the process's native standard
// output sink.
func IsDefaultOutput(s *sink.Sink) bool { return Default().IsDefaultOutput(s) }
