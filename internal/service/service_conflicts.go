package service

import (
	"context"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type conflictDetector struct {
	storages *store.Storages
	logger   *logger.Logger
}

func NewConflictDetector(storages *store.Storages, logger *logger.Logger) ConflictDetector {
	return &conflictDetector{
		storages: storages,
		logger:   logger,
	}
}

func (d *conflictDetector) DetectConflicts(ctx context.Context, data models.SnapshotData) ([]models.Conflict, error) {
	log := logger.FromContext(ctx)

	localTransactions, err := d.storages.Transactions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: transactions: %w", ErrStorageRead, err)
	}
	localCategories, err := d.storages.Categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: categories: %w", ErrStorageRead, err)
	}
	localAccounts, err := d.storages.Accounts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: accounts: %w", ErrStorageRead, err)
	}

	transactionByID := make(map[string]models.Transaction, len(localTransactions))
	for _, t := range localTransactions {
		transactionByID[t.ID] = t
	}
	categoryByID := make(map[string]models.Category, len(localCategories))
	for _, c := range localCategories {
		categoryByID[c.ID] = c
	}
	accountByID := make(map[string]models.Account, len(localAccounts))
	for _, a := range localAccounts {
		accountByID[a.ID] = a
	}

	// import-appearance order keeps the conflict list deterministic for the
	// same pair of datasets
	var conflicts []models.Conflict

	for _, imported := range data.Transactions {
		local, exists := transactionByID[imported.ID]
		if !exists || local.TrackedFieldsEqual(imported) {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			Type:        models.EntityTransaction,
			ID:          imported.ID,
			Local:       local,
			Imported:    imported,
			Description: fmt.Sprintf("transaction %q was changed on both devices", local.Description),
		})
	}

	for _, imported := range data.Categories {
		local, exists := categoryByID[imported.ID]
		if !exists || local.TrackedFieldsEqual(imported) {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			Type:        models.EntityCategory,
			ID:          imported.ID,
			Local:       local,
			Imported:    imported,
			Description: fmt.Sprintf("category %q was changed on both devices", local.Name),
		})
	}

	for _, imported := range data.Accounts {
		local, exists := accountByID[imported.ID]
		if !exists || local.TrackedFieldsEqual(imported) {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			Type:        models.EntityAccount,
			ID:          imported.ID,
			Local:       local,
			Imported:    imported,
			Description: fmt.Sprintf("account %q was changed on both devices", local.Name),
		})
	}

	log.Debug().
		Str("func", "conflictDetector.DetectConflicts").
		Int("conflicts", len(conflicts)).
		Msg("conflict detection finished")

	return conflicts, nil
}
