// Copyright (c) 2025 BVK Chaitanya

package envfile

import (
	"fmt"
	"os"
	"regexp"
)

type Option interface {
	apply(*options) error
}

type optionFunc func(*options) error

func (v optionFunc) apply(opts *options) error {
	return v(opts)
}

var nameRe = regexp.MustCompile("^[a-zA-Z][0-9a-zA-Z_]*$")

// SearchDir option adds a directory to the env file search path. Giving
// any SearchDir option replaces the default current-directory/home
// search entirely.
func SearchDir(dir string) Option {
	return optionFunc(func(opts *options) error {
		if len(dir) == 0 {
			return fmt.Errorf("search directory cannot be empty: %w", os.ErrInvalid)
		}
		opts.dirs = append(opts.dirs, dir)
		return nil
	})
}

// VariableNamePrefix option adds the input prefix to all variable names
// defined in the envfile.
func VariableNamePrefix(prefix string) Option {
	return optionFunc(func(opts *options) error {
		if !nameRe.MatchString(prefix) {
			return fmt.Errorf("variable name prefix has invalid characters: %w", os.ErrInvalid)
		}
		opts.variableNamePrefix = prefix
		return nil
	})
}

// OverwriteIfExists option allows overwriting the current value of an
// environment variable that already has a non-empty value.
func OverwriteIfExists(overwrite bool) Option {
	return optionFunc(func(opts *options) error {
		opts.overwriteIfExists = overwrite
		return nil
	})
}
