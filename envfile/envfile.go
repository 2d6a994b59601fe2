// Copyright (c) 2025 BVK Chaitanya

// Package envfile seeds the process environment from a KEY=VALUE file, so
// per-user diagnostic switches (e.g. DIAGLOG_DEBUG=trace in ~/.diaglog.env)
// apply to every program using the router without any flag plumbing.
//
// The file format is one assignment per line; blank lines and lines
// starting with '#' are ignored. Values are taken verbatim -- no shell
// quoting, escaping or expansion is performed.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

type options struct {
	dirs []string

	variableNamePrefix string

	overwriteIfExists bool
}

// Load reads the named env file and sets the variables it defines in the
// current process's environment. The file is searched in the directories
// given through SearchDir options, falling back to the current directory
// and then the user's home directory; the first file found wins. A
// missing file is not an error.
//
// Variables that already have a non-empty value are left alone unless the
// OverwriteIfExists option says otherwise.
func Load(filename string, opts ...Option) error {
	if strings.ContainsRune(filename, os.PathSeparator) {
		return fmt.Errorf("file name contains path separator: %w", os.ErrInvalid)
	}
	var fopts options
	for _, v := range opts {
		if err := v.apply(&fopts); err != nil {
			return err
		}
	}

	dirs := fopts.dirs
	if len(dirs) == 0 {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
		if u, err := user.Current(); err == nil && len(u.HomeDir) != 0 {
			dirs = append(dirs, u.HomeDir)
		}
	}
	if len(dirs) == 0 {
		return fmt.Errorf("could not determine any env file directory")
	}

	for _, dir := range dirs {
		fp, err := os.Open(filepath.Join(dir, filename))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			continue
		}
		defer fp.Close()
		return apply(fp, &fopts)
	}
	return nil
}

func apply(fp *os.File, fopts *options) error {
	scanner := bufio.NewScanner(fp)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid/unrecognized variable assignment on line %d: %w", i, os.ErrInvalid)
		}
		key = strings.TrimSpace(key)
		if !nameRe.MatchString(key) {
			return fmt.Errorf("invalid environment variable name %q on line %d: %w", key, i, os.ErrInvalid)
		}
		key = fopts.variableNamePrefix + key
		if len(os.Getenv(key)) != 0 && !fopts.overwriteIfExists {
			continue
		}
		if err := os.Setenv(key, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("could not set %q: %w", key, err)
		}
	}
	return scanner.Err()
}
