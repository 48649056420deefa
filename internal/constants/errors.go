package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no token configured, use 'glo login' or set GLO_TOKEN")
	ErrEmptyToken        = errors.New("token must not be empty")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrBatchFileRequired   = errors.New("--file flag is required")
	ErrNothingToUpdate     = errors.New("no fields to update were given")
)

// File system errors.
var (
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
	ErrNotRegularFile             = errors.New("path is not a regular file")
)
