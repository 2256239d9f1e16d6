package config

import "errors"

// Errors returned by configuration loading.
var (
	// ErrInvalidConfig indicates a configuration value the editor cannot
	// run with.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidKeymap indicates a keymap entry that does not resolve to
	// a known chord or action.
	ErrInvalidKeymap = errors.New("invalid keymap")
)
