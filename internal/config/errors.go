package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidExportConfigs indicates an invalid export directory setting.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidSyncConfigs indicates invalid sync reminder settings
	// (for example, a zero reminder interval or threshold).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
