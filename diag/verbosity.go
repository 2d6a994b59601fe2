// Copyright (c) 2025 BVK Chaitanya

package diag

import (
	"strconv"
	"strings"
)

// ParseDebugLevel coerces a symbolic or numeric token to a debug level.
//
// Case-insensitive tokens no/false/off map to 0, yes/true/on to 1 and
// trace/tracing to 2. Numeric tokens, including scientific notation, pass
// through as their integer value. Anything else, the empty string
// included, maps to 0.
func ParseDebugLevel(s string) int {
	return parseLevel(s, true)
}

// ParseLogLevel coerces a symbolic or numeric token to a log level. The
// token table is the same as ParseDebugLevel's without the trace entries,
// which parse as unrecognized words.
func ParseLogLevel(s string) int {
	return parseLevel(s, false)
}

func parseLevel(s string, trace bool) int {
	switch w := strings.ToLower(strings.TrimSpace(s)); w {
	case "no", "false", "off":
		return 0
	case "yes", "true", "on":
		return 1
	case "trace", "tracing":
		if trace {
			return 2
		}
		return 0
	default:
		v, err := strconv.ParseFloat(w, 64)
		if err != nil || v < 0 {
			return 0
		}
		return int(v)
	}
}

// SetDebugLevel stores the given debug level and returns the stored
// value. A non-zero debug level enables logging when the log level is
// still 0; setting the debug level to 0 never changes the log level.
func (r *Router) SetDebugLevel(v int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v < 0 {
		v = 0
	}
	r.debugLevel = v
	if v > 0 && r.logLevel == 0 {
		r.logLevel = 1
	}
	return r.debugLevel
}

// SetLogLevel stores the given log level and returns the stored value.
func (r *Router) SetLogLevel(v int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v < 0 {
		v = 0
	}
	r.logLevel = v
	return r.logLevel
}

// DebugLevel returns the current debug level.
func (r *Router) DebugLevel() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.debugLevel
}

// LogLevel returns the current log level.
func (r *Router) LogLevel() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logLevel
}
