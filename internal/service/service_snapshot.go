package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type snapshotService struct {
	storages *store.Storages
	device   DeviceService
	logger   *logger.Logger
}

func NewSnapshotService(storages *store.Storages, device DeviceService, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		storages: storages,
		device:   device,
		logger:   logger,
	}
}

func (s *snapshotService) GenerateSyncData(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	deviceID, err := s.device.GetOrCreateDeviceID(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	transactions, err := s.storages.Transactions.GetAll(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: transactions: %w", ErrStorageRead, err)
	}
	categories, err := s.storages.Categories.GetAll(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: categories: %w", ErrStorageRead, err)
	}
	accounts, err := s.storages.Accounts.GetAll(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: accounts: %w", ErrStorageRead, err)
	}
	settings, err := s.storages.Settings.Get(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: settings: %w", ErrStorageRead, err)
	}

	// empty collections must serialize as [] rather than null, otherwise the
	// file fails array validation on the importing device
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	now := time.Now().UTC()
	snapshot := models.Snapshot{
		DeviceID:  deviceID,
		Timestamp: now.Format(time.RFC3339),
		Version:   models.SchemaVersion,
		Data: models.SnapshotData{
			Transactions: transactions,
			Categories:   categories,
			Accounts:     accounts,
			Settings:     settings,
		},
		Metadata: models.SnapshotMetadata{
			TotalTransactions: len(transactions),
			TotalCategories:   len(categories),
			TotalAccounts:     len(accounts),
			LastModified:      lastModified(transactions, categories, accounts, now),
		},
	}

	log.Debug().
		Str("func", "snapshotService.GenerateSyncData").
		Int("transactions", len(transactions)).
		Int("categories", len(categories)).
		Int("accounts", len(accounts)).
		Msg("snapshot assembled")

	return snapshot, nil
}

// lastModified picks the newest record timestamp across all collections,
// falling back to now for a dataset with no timestamps at all.
func lastModified(transactions []models.Transaction, categories []models.Category, accounts []models.Account, now time.Time) string {
	var latest time.Time
	for _, t := range transactions {
		if t.UpdatedAt.After(latest) {
			latest = t.UpdatedAt
		}
		if t.CreatedAt.After(latest) {
			latest = t.CreatedAt
		}
	}
	for _, c := range categories {
		if c.CreatedAt.After(latest) {
			latest = c.CreatedAt
		}
	}
	for _, a := range accounts {
		if a.CreatedAt.After(latest) {
			latest = a.CreatedAt
		}
	}
	if latest.IsZero() {
		latest = now
	}
	return latest.UTC().Format(time.RFC3339)
}
