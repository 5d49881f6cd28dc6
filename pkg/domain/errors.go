package domain

import "errors"

var (
	// ErrMissingAPIKey rejects a dispatch before any provider call is attempted.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidFilename rejects path-traversal attempts before any file access.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrSaveNotFound reports a missing save document.
	ErrSaveNotFound = errors.New("save file not found")

	// ErrEmptyCompletion reports a provider call that returned no usable content.
	ErrEmptyCompletion = errors.New("no completion response")
)
