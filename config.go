// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bvk/diaglog/diag"
	"github.com/bvk/diaglog/envfile"
	"github.com/bvk/diaglog/logdir"
	"github.com/bvk/diaglog/sink"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional TOML configuration for the diaglog command.
// Command-line flags override config file values; levels accept the same
// symbolic or numeric tokens as the DIAGLOG_* environment variables.
type Config struct {
	Program string `toml:"program"`

	ErrorFile string `toml:"error-file"`
	LogFile   string `toml:"log-file"`
	DebugFile string `toml:"debug-file"`

	// LogDir, when set, binds the operational log channel to a managed,
	// size-capped file in this directory instead of LogFile.
	LogDir string `toml:"log-dir"`

	DebugLevel string `toml:"debug-level"`
	LogLevel   string `toml:"log-level"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	cfg := new(Config)
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// routerFlags holds the flags shared by all commands that construct a
// router.
type routerFlags struct {
	configPath string

	program string

	errorFile string
	logFile   string
	debugFile string
	logDir    string

	debugLevel string
	logLevel   string
}

func (f *routerFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.configPath, "config", "", "path to a TOML config file")
	fset.StringVar(&f.program, "program", "", "program identity for the line stamps")
	fset.StringVar(&f.errorFile, "error-file", "", "redirect the error channel to this file")
	fset.StringVar(&f.logFile, "log-file", "", "redirect the operational log channel to this file")
	fset.StringVar(&f.debugFile, "debug-file", "", "redirect the debug channel to this file")
	fset.StringVar(&f.logDir, "log-dir", "", "redirect the operational log channel to a managed file in this directory")
	fset.StringVar(&f.debugLevel, "debug-level", "", "debug verbosity (0/1/2 or no/yes/trace)")
	fset.StringVar(&f.logLevel, "log-level", "", "log verbosity (0/1 or no/yes)")
}

// pick returns the flag value when given, the config value otherwise.
func pick(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func (f *routerFlags) newRouter() (*diag.Router, error) {
	// Per-user defaults for the DIAGLOG_* switches.
	if err := envfile.Load(".diaglog.env", envfile.VariableNamePrefix("DIAGLOG_")); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if f.configPath != "" {
		c, err := loadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	r := diag.New(&diag.Options{Program: pick(f.program, cfg.Program)})

	if path := pick(f.errorFile, cfg.ErrorFile); path != "" {
		s, err := sink.Open(path)
		if err != nil {
			return nil, err
		}
		if err := r.RedirectError(s); err != nil {
			return nil, err
		}
	}
	if dir := pick(f.logDir, cfg.LogDir); dir != "" {
		s, err := logdir.Open(dir, "diaglog")
		if err != nil {
			return nil, err
		}
		if err := r.RedirectLog(s); err != nil {
			return nil, err
		}
	} else if path := pick(f.logFile, cfg.LogFile); path != "" {
		s, err := sink.Open(path)
		if err != nil {
			return nil, err
		}
		if err := r.RedirectLog(s); err != nil {
			return nil, err
		}
	}
	if path := pick(f.debugFile, cfg.DebugFile); path != "" {
		s, err := sink.Open(path)
		if err != nil {
			return nil, err
		}
		if err := r.RedirectDebug(s); err != nil {
			return nil, err
		}
	}

	// Log level first: the debug level may imply it.
	if v := pick(f.logLevel, cfg.LogLevel); v != "" {
		r.SetLogLevel(diag.ParseLogLevel(v))
	}
	if v := pick(f.debugLevel, cfg.DebugLevel); v != "" {
		r.SetDebugLevel(diag.ParseDebugLevel(v))
	}
	return r, nil
}
