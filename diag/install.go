// Copyright (c) 2025 BVK Chaitanya

package diag

import (
	"io"
	"log"
)

// Install points the standard library's default log output at this
// router's Error channel, so the process's default diagnostic path flows
// through the dispatch engine. Installation is an explicit step rather
// than an import side effect; the returned function restores the previous
// log configuration.
func (r *Router) Install() (restore func()) {
	prevWriter := log.Writer()
	prevFlags := log.Flags()
	prevPrefix := log.Prefix()

	// The router adds its own stamp; strip the log package's.
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(r.ErrorWriter())

	return func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	}
}

// ErrorWriter returns a writer that routes every Write as one warn-kind
// event.
func (r *Router) ErrorWriter() io.Writer {
	return &eventWriter{router: r, kind: warnKind}
}

// LogWriter returns a writer that routes every Write as one log event.
func (r *Router) LogWriter() io.Writer {
	return &eventWriter{router: r, kind: logKind}
}

// DebugWriter returns a writer that routes every Write as one debug
// event.
func (r *Router) DebugWriter() io.Writer {
	return &eventWriter{router: r, kind: debugKind}
}

type eventWriter struct {
	router *Router
	kind   eventKind
}

// Write routes p as one event. Writers like the log package terminate
// every record with a newline, which also suppresses the caller-location
// suffix -- the immediate caller here would be the adapter, not the
// diagnostic site.
func (w *eventWriter) Write(p []byte) (int, error) {
	if err := w.router.dispatch(w.kind, pkgCallDepth, []any{string(p)}); err != nil {
		return 0, err
	}
	return len(p), nil
}
