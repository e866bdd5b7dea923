package store

import (
	"context"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/config"
	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	Transactions TransactionRepository
	Categories   CategoryRepository
	Accounts     AccountRepository
	Settings     SettingsRepository
	Device       DeviceRepository
	SyncQueue    SyncQueueRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to a repository per collection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Transactions: NewTransactionRepository(db, logger),
		Categories:   NewCategoryRepository(db, logger),
		Accounts:     NewAccountRepository(db, logger),
		Settings:     NewSettingsRepository(db, logger),
		Device:       NewDeviceRepository(db, logger),
		SyncQueue:    NewSyncQueueRepository(db, logger),
	}, nil
}
