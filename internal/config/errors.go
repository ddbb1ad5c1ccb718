package config

import "errors"

// Validation errors returned by [Settings.validate].
var (
	// ErrInvalidPathSettings indicates an empty output or credentials path.
	ErrInvalidPathSettings = errors.New("invalid path settings")
	// ErrInvalidLogSettings indicates an unknown log level.
	ErrInvalidLogSettings = errors.New("invalid log settings")
)
