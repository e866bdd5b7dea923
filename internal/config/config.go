package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Export holds settings for the directory sync and backup files are
	// written to.
	Export Export `envPrefix:"EXPORT_"`

	// Sync holds settings for the advisory sync reminder.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "finance.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Export holds settings for file exports.
type Export struct {
	// Dir is the directory sync snapshots and full backups are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// Sync holds settings for the advisory sync reminder job.
type Sync struct {
	// ReminderInterval defines how often the reminder job checks whether a
	// sync is overdue (e.g. "1h").
	// Env: SYNC_REMINDER_INTERVAL
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`

	// ReminderThreshold is the elapsed time since the last successful sync
	// after which the user is reminded to sync (e.g. "24h").
	// Env: SYNC_REMINDER_THRESHOLD
	ReminderThreshold time.Duration `env:"REMINDER_THRESHOLD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
