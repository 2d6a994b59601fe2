// Copyright (c) 2025 BVK Chaitanya

package diag

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bvk/diaglog/sink"
	"golang.org/x/time/rate"
)

// ErrInvalidSink is reported when a redirect call is given a reference
// that cannot be resolved to an open, writable sink. The channel's
// previous binding is left intact.
var ErrInvalidSink = errors.New("invalid sink")

type Options struct {
	// Program is the identity stamped on every output line. Defaults to
	// the base name of os.Args[0].
	Program string

	// Stderr is the process's native error sink. It becomes the initial
	// Error and OperationalLog binding and is preserved as RawError.
	Stderr *os.File

	// Stdout is the process's native output sink and the initial Debug
	// binding.
	Stdout *os.File

	// DebugFloodLimit, when positive, caps the rate of debug and trace
	// events; excess events are dropped before formatting. Zero disables
	// limiting.
	DebugFloodLimit rate.Limit

	// DebugFloodBurst is the burst size for DebugFloodLimit.
	DebugFloodBurst int
}

func (v *Options) setDefaults() {
	if v.Program == "" {
		v.Program = filepath.Base(os.Args[0])
	}
	if v.Stderr == nil {
		v.Stderr = os.Stderr
	}
	if v.Stdout == nil {
		v.Stdout = os.Stdout
	}
	if v.DebugFloodBurst == 0 {
		v.DebugFloodBurst = 1
	}
}

// Router routes diagnostic messages to its channels' sinks.
//
// All methods are safe for concurrent use; channel bindings and verbosity
// levels change only through explicit Redirect and Set calls.
type Router struct {
	mu sync.Mutex

	program string

	// Channel bindings. rawErr keeps the original error destination and
	// is never rebound; stdout keeps the native output sink for the
	// IsDefaultOutput query.
	err    *sink.Sink
	logs   *sink.Sink
	dbg    *sink.Sink
	rawErr *sink.Sink
	stdout *sink.Sink

	debugLevel int
	logLevel   int

	limiter *rate.Limiter

	// exit terminates the process after a die-kind dispatch.
	exit func(code int)
}

// New creates a router with the default channel bindings: Error and
// OperationalLog on the native error sink, Debug on the native output
// sink. The verbosity levels are seeded from the DIAGLOG_LOG and
// DIAGLOG_DEBUG environment variables.
func New(opts *Options) *Router {
	if opts == nil {
		opts = &Options{}
	}
	opts.setDefaults()

	stderr := sink.New(opts.Stderr)
	stdout := sink.New(opts.Stdout)
	r := &Router{
		program: opts.Program,
		err:     stderr,
		logs:    stderr,
		dbg:     stdout,
		rawErr:  stderr,
		stdout:  stdout,
		exit:    func(code int) { os.Exit(code) },
	}
	if opts.DebugFloodLimit > 0 {
		r.limiter = rate.NewLimiter(opts.DebugFloodLimit, opts.DebugFloodBurst)
	}

	// Log level first: the debug level may imply it.
	r.SetLogLevel(ParseLogLevel(os.Getenv("DIAGLOG_LOG")))
	r.SetDebugLevel(ParseDebugLevel(os.Getenv("DIAGLOG_DEBUG")))
	return r
}

// RawError returns the original error destination from before any
// redirection.
func (r *Router) RawError() *sink.Sink {
	return r.rawErr
}

// RedirectError rebinds the Error channel to the given sink.
func (r *Router) RedirectError(s *sink.Sink) error {
	return r.rebind(&r.err, s)
}

// RedirectLog rebinds the OperationalLog channel to the given sink.
func (r *Router) RedirectLog(s *sink.Sink) error {
	return r.rebind(&r.logs, s)
}

// RedirectDebug rebinds the Debug channel to the given sink.
func (r *Router) RedirectDebug(s *sink.Sink) error {
	return r.rebind(&r.dbg, s)
}

// rebind replaces a channel binding after verifying the sink resolves to
// an open, writable destination. Identity comparisons against the channel
// reflect the new sink immediately. Sinks are unbuffered by construction,
// which covers the auto-flush requirement on rebound channels.
func (r *Router) rebind(ch **sink.Sink, s *sink.Sink) error {
	if s == nil {
		return fmt.Errorf("no sink given: %w", ErrInvalidSink)
	}
	if !s.Writable() {
		return fmt.Errorf("sink %s is not open for writing: %w", s.Name(), ErrInvalidSink)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	*ch = s
	return nil
}

// IsErrorSink reports whether s aliases the Error channel's sink.
func (r *Router) IsErrorSink(s *sink.Sink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sink.Same(s, r.err)
}

// IsLogSink reports whether s aliases the OperationalLog channel's sink.
func (r *Router) IsLogSink(s *sink.Sink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sink.Same(s, r.logs)
}

// IsDebugSink reports whether s aliases the Debug channel's sink.
func (r *Router) IsDebugSink(s *sink.Sink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sink.Same(s, r.dbg)
}

// IsDefaultOutput reports whether s aliases the process's native standard
// output sink.
func (r *Router) IsDefaultOutput(s *sink.Sink) bool {
	return sink.Same(s, r.stdout)
}

// bindings returns a consistent snapshot of the channel sinks and
// verbosity levels for one dispatch.
func (r *Router) bindings() (errSink, logSink, dbgSink *sink.Sink, debugLevel, logLevel int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err, r.logs, r.dbg, r.debugLevel, r.logLevel
}
