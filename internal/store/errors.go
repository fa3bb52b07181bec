package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrConfigNotFound is returned when no configuration was saved yet.
	ErrConfigNotFound = errors.New("configuration was not found")
)
