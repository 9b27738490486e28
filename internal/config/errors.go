package config

import "errors"

// Errors returned while loading a config document.
var (
	// ErrUnsupportedConfigFormat indicates a config document whose
	// extension maps to no known format (supported: .json, .yaml, .yml).
	ErrUnsupportedConfigFormat = errors.New("unsupported config document format")
	// ErrRemoteConfigUnavailable indicates a remote config URL that
	// answered with a non-2xx status.
	ErrRemoteConfigUnavailable = errors.New("remote config unavailable")
)
