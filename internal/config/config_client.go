package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running application.
	Version string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientExport holds file-export settings.
type ClientExport struct {
	// Dir is the directory sync and backup files are written to.
	Dir string
}

// ClientSync contains sync reminder settings.
type ClientSync struct {
	// ReminderInterval defines how often the reminder job checks for an
	// overdue sync.
	ReminderInterval time.Duration
	// ReminderThreshold is the elapsed time since the last successful sync
	// after which the reminder fires.
	ReminderThreshold time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Storage contains storage settings.
	Storage ClientStorage
	// Export contains export settings.
	Export ClientExport
	// Sync contains sync reminder settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Export: ClientExport{
			Dir: cfg.Export.Dir,
		},
		Sync: ClientSync{
			ReminderInterval:  cfg.Sync.ReminderInterval,
			ReminderThreshold: cfg.Sync.ReminderThreshold,
		},
	}

	return clientCfg, clientCfg.validate()
}
