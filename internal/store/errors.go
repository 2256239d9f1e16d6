package store

import "errors"

// Errors returned by document loading.
var (
	// ErrMalformedDocument indicates a map file that fails validation.
	ErrMalformedDocument = errors.New("malformed map document")

	// ErrUnsupportedVersion indicates a map file written by a newer
	// format than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported map format version")
)
