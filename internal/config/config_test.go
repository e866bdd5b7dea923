package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "2.1.0",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.finance/finance.db",

		"EXPORT_DIR": "/home/user/exports",

		"SYNC_REMINDER_INTERVAL":  "30m",
		"SYNC_REMINDER_THRESHOLD": "48h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "/home/user/.finance/finance.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/user/exports", cfg.Export.Dir)
	assert.Equal(t, 30*time.Minute, cfg.Sync.ReminderInterval)
	assert.Equal(t, 48*time.Hour, cfg.Sync.ReminderThreshold)
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanosecond numbers.
	jsonBody := `{
		"app": { "version": "1.2.3" },
		"storage": { "db": { "dsn": "finance.db" } },
		"export": { "dir": "/tmp/exports" },
		"sync": {
			"reminder_interval": "1h",
			"reminder_threshold": "24h"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "finance.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Equal(t, time.Hour, cfg.Sync.ReminderInterval)
	assert.Equal(t, 24*time.Hour, cfg.Sync.ReminderThreshold)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestBuilder_EnvWinsOverDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "env.db",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	// Fields the env did not set fall back to defaults.
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Sync.ReminderThreshold)
}

func TestBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "finance.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.Sync.ReminderInterval)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Storage: ClientStorage{DB: ClientDB{DSN: "finance.db"}},
		Export:  ClientExport{Dir: "."},
		Sync:    ClientSync{ReminderInterval: time.Hour, ReminderThreshold: 24 * time.Hour},
	}
	require.NoError(t, valid.validate())

	memory := *valid
	memory.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, memory.validate(), ErrInvalidStorageConfigs)

	noExport := *valid
	noExport.Export.Dir = ""
	assert.ErrorIs(t, noExport.validate(), ErrInvalidExportConfigs)

	noReminder := *valid
	noReminder.Sync.ReminderInterval = 0
	assert.ErrorIs(t, noReminder.validate(), ErrInvalidSyncConfigs)
}
