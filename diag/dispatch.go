// Copyright (c) 2025 BVK Chaitanya

package diag

import (
	"fmt"

	"github.com/bvk/diaglog/sink"
)

type eventKind int

const (
	warnKind eventKind = iota
	dieKind
	logKind
	debugKind
	traceKind
)

// pkgCallDepth is the runtime.Caller skip count from formatMessage to the
// originating diagnostic call. Both the Router methods and the package
// level functions sit exactly one frame above dispatch.
const pkgCallDepth = 3

func sprintfArgs(format string, args []any) []any {
	return []any{fmt.Sprintf(format, args...)}
}

// Warn routes a warn-kind event: the message is stamped with the ERR tag
// and delivered to every channel whose sink is not already covered by an
// earlier write in the same dispatch. Warn never terminates the process.
func (r *Router) Warn(args ...any) error {
	return r.dispatch(warnKind, pkgCallDepth, args)
}

// Warnf is Warn with fmt.Sprintf formatting.
func (r *Router) Warnf(format string, args ...any) error {
	return r.dispatch(warnKind, pkgCallDepth, sprintfArgs(format, args))
}

// Fatal routes a die-kind event exactly like Warn and then terminates the
// process. The message is durably routed before termination.
func (r *Router) Fatal(args ...any) {
	r.dispatch(dieKind, pkgCallDepth, args)
	r.exit(1)
}

// Fatalf is Fatal with fmt.Sprintf formatting.
func (r *Router) Fatalf(format string, args ...any) {
	r.dispatch(dieKind, pkgCallDepth, sprintfArgs(format, args))
	r.exit(1)
}

// Log routes a log event with the LOG tag. Delivery to the
// OperationalLog channel is gated by the log level; an unaliased Debug
// channel also receives the message when the debug level allows.
func (r *Router) Log(args ...any) error {
	return r.dispatch(logKind, pkgCallDepth, args)
}

// Logf is Log with fmt.Sprintf formatting.
func (r *Router) Logf(format string, args ...any) error {
	return r.dispatch(logKind, pkgCallDepth, sprintfArgs(format, args))
}

// Debug routes a debug event with the BUG tag to the Debug channel. It is
// a no-op unless the debug level is at least 1.
func (r *Router) Debug(args ...any) error {
	return r.dispatch(debugKind, pkgCallDepth, args)
}

// Debugf is Debug with fmt.Sprintf formatting.
func (r *Router) Debugf(format string, args ...any) error {
	return r.dispatch(debugKind, pkgCallDepth, sprintfArgs(format, args))
}

// Trace routes a trace event with the TRC tag to the Debug channel. It is
// a no-op unless the debug level is at least 2.
func (r *Router) Trace(args ...any) error {
	return r.dispatch(traceKind, pkgCallDepth, args)
}

// Tracef is Trace with fmt.Sprintf formatting.
func (r *Router) Tracef(format string, args ...any) error {
	return r.dispatch(traceKind, pkgCallDepth, sprintfArgs(format, args))
}

// dispatch is the routing engine. It decides the target channel set for
// one event using sink identity comparisons, formats the stamped message
// once per dispatch and performs the physical writes under the per-sink
// locking discipline.
//
// Writes to the Debug and OperationalLog channels are best-effort: their
// failures never prevent delivery to the remaining channels and surface
// only when no Error channel failure takes precedence.
func (r *Router) dispatch(kind eventKind, skip int, args []any) error {
	errSink, logSink, dbgSink, debugLevel, logLevel := r.bindings()

	switch kind {
	case warnKind, dieKind:
		msg := []byte(r.formatMessage(skip, "ERR", args))

		var firstErr error
		if !sink.Same(dbgSink, errSink) {
			if err := writeGated(dbgSink, debugLevel, msg); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("could not write to debug sink: %w", err)
			}
		}
		if !sink.Same(logSink, errSink) && !sink.Same(logSink, dbgSink) {
			if err := writeGated(logSink, logLevel, msg); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("could not write to log sink: %w", err)
			}
		}
		if _, err := errSink.WriteLocked(msg); err != nil {
			return fmt.Errorf("could not write to error sink: %w", err)
		}
		return firstErr

	case logKind:
		msg := []byte(r.formatMessage(skip, "LOG", args))

		var firstErr error
		if !sink.Same(dbgSink, logSink) {
			if err := writeGated(dbgSink, debugLevel, msg); err != nil {
				firstErr = fmt.Errorf("could not write to debug sink: %w", err)
			}
		}
		if err := writeGated(logSink, logLevel, msg); err != nil {
			return fmt.Errorf("could not write to log sink: %w", err)
		}
		return firstErr

	case debugKind:
		if debugLevel < 1 {
			return nil
		}
		if r.limiter != nil && !r.limiter.Allow() {
			return nil
		}
		msg := []byte(r.formatMessage(skip, "BUG", args))
		if _, err := dbgSink.WriteLocked(msg); err != nil {
			return fmt.Errorf("could not write to debug sink: %w", err)
		}
		return nil

	case traceKind:
		if debugLevel < 2 {
			return nil
		}
		if r.limiter != nil && !r.limiter.Allow() {
			return nil
		}
		msg := []byte(r.formatMessage(skip, "TRC", args))
		if _, err := dbgSink.WriteLocked(msg); err != nil {
			return fmt.Errorf("could not write to debug sink: %w", err)
		}
		return nil
	}
	return nil
}

// writeGated performs one locked physical write when the channel's
// verbosity level permits it. The routing decision selects the channel;
// the level gates the write itself.
func writeGated(s *sink.Sink, level int, msg []byte) error {
	if level < 1 {
		return nil
	}
	_, err := s.WriteLocked(msg)
	return err
}
