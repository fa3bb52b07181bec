package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or an unknown encoding).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid client behaviour settings
	// (for example, batch mode without an inventory file).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid receiver settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
