package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client view performs the meaningful
// validation in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Export.Dir == "" {
		return ErrInvalidExportConfigs
	}

	if cfg.Sync.ReminderInterval <= 0 || cfg.Sync.ReminderThreshold <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
