// Copyright (c) 2025 BVK Chaitanya

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDebugLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"no", 0},
		{"No", 0},
		{"false", 0},
		{"off", 0},
		{"YES", 1},
		{"true", 1},
		{"on", 1},
		{"Trace", 2},
		{"tracing", 2},
		{"3.0e0", 3},
		{"", 0},
		{"nonsense", 0},
		{"-5", 0},
		{" 1 ", 1},
	}
	for _, test := range tests {
		assert.Equalf(t, test.want, ParseDebugLevel(test.in), "input %q", test.in)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"no", 0},
		{"YES", 1},
		{"on", 1},
		// No trace tokens in the log level table.
		{"trace", 0},
		{"tracing", 0},
		{"", 0},
	}
	for _, test := range tests {
		assert.Equalf(t, test.want, ParseLogLevel(test.in), "input %q", test.in)
	}
}

func TestSetDebugLevelStoresParsedValues(t *testing.T) {
	r := newTestRouter(t)

	for _, in := range []string{"0", "1", "2", "no", "YES", "Trace", "off", "3.0e0", ""} {
		stored := r.SetDebugLevel(ParseDebugLevel(in))
		assert.Equalf(t, stored, r.DebugLevel(), "input %q", in)
	}
	assert.Equal(t, 3, r.SetDebugLevel(ParseDebugLevel("3.0e0")))
}

func TestDebugImpliesLog(t *testing.T) {
	r := newTestRouter(t)

	r.SetLogLevel(0)
	r.SetDebugLevel(1)
	assert.Equal(t, 1, r.LogLevel(), "non-zero debug level must enable logging")

	// Disabling debug never touches the log level.
	r.SetDebugLevel(0)
	assert.Equal(t, 1, r.LogLevel())

	// An already-enabled log level is left alone.
	r.SetLogLevel(1)
	r.SetDebugLevel(2)
	assert.Equal(t, 1, r.LogLevel())
}

func TestVerbosityFromEnvironment(t *testing.T) {
	t.Setenv("DIAGLOG_DEBUG", "trace")
	t.Setenv("DIAGLOG_LOG", "")

	r := New(&Options{Program: "diagtest"})
	assert.Equal(t, 2, r.DebugLevel())
	assert.Equal(t, 1, r.LogLevel(), "debug from environment implies logging")
}
