package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-e export directory for sync and backup files
//	-c/-config json file path with configs
//	-reminder-interval how often to check for an overdue sync (e.g., "1h")
//	-reminder-threshold elapsed time after which a sync reminder fires (e.g., "24h")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var exportDir string
	var jsonConfigPath string
	var reminderInterval time.Duration
	var reminderThreshold time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&exportDir, "e", "", "Export directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&reminderInterval, "reminder-interval", 0, "Sync reminder check interval (e.g., 1h)")
	flag.DurationVar(&reminderThreshold, "reminder-threshold", 0, "Sync reminder threshold (e.g., 24h)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Export: Export{
			Dir: exportDir,
		},
		Sync: Sync{
			ReminderInterval:  reminderInterval,
			ReminderThreshold: reminderThreshold,
		},
		JSONFilePath: jsonConfigPath,
	}
}
