package store

import (
	"context"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

// TransactionFilter narrows a transaction listing. Zero-value fields are not
// applied; From and To bound the transaction date (inclusive).
type TransactionFilter struct {
	Type     string
	Category string
	From     string
	To       string
}

// TransactionRepository is the persistence contract for the transactions
// collection. All methods are independently failable; Get and Update return
// [ErrNotFound] when no record with the given id exists.
type TransactionRepository interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id string) (models.Transaction, error)
	Add(ctx context.Context, t models.Transaction) error
	Update(ctx context.Context, t models.Transaction) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	// Filter returns transactions matching the filter in date order,
	// newest first. Used by the dashboard-style listings.
	Filter(ctx context.Context, f TransactionFilter) ([]models.Transaction, error)
}

// CategoryRepository is the persistence contract for the categories
// collection.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (models.Category, error)
	Add(ctx context.Context, c models.Category) error
	Update(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// AccountRepository is the persistence contract for the accounts collection.
type AccountRepository interface {
	GetAll(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id string) (models.Account, error)
	Add(ctx context.Context, a models.Account) error
	Update(ctx context.Context, a models.Account) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// SettingsRepository persists the single settings object as one row per key.
type SettingsRepository interface {
	// Get assembles the whole settings object. An empty database yields an
	// empty (non-nil) Settings.
	Get(ctx context.Context) (models.Settings, error)
	// Put upserts the given keys, leaving keys absent from s untouched.
	Put(ctx context.Context, s models.Settings) error
	// Replace drops all stored keys and writes s wholesale.
	Replace(ctx context.Context, s models.Settings) error
}

// DeviceRepository persists the device identity token and the last
// successful sync time.
type DeviceRepository interface {
	// GetDeviceID returns the persisted identity or [ErrNotFound].
	GetDeviceID(ctx context.Context) (string, error)
	SaveDeviceID(ctx context.Context, deviceID string) error
	DeleteDeviceID(ctx context.Context) error
	// LastSyncTime returns [ErrNotFound] when no sync has completed yet.
	LastSyncTime(ctx context.Context) (time.Time, error)
	SetLastSyncTime(ctx context.Context, t time.Time) error
}

// SyncQueueRepository persists advisory pending-sync entries.
type SyncQueueRepository interface {
	Append(ctx context.Context, e models.SyncQueueEntry) error
	Pending(ctx context.Context) ([]models.SyncQueueEntry, error)
	Clear(ctx context.Context) error
}
