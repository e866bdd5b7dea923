package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type mergeService struct {
	storages *store.Storages
	logger   *logger.Logger
}

func NewMergeService(storages *store.Storages, logger *logger.Logger) MergeService {
	return &mergeService{
		storages: storages,
		logger:   logger,
	}
}

func (m *mergeService) MergeData(ctx context.Context, data models.SnapshotData, conflicts []models.Conflict, choices []models.Choice) (models.MergeResult, error) {
	log := logger.FromContext(ctx)

	keepLocal := resolveKeepLocal(conflicts, choices)
	stats := models.MergeStats{}

	for _, t := range data.Transactions {
		if keepLocal[models.EntityTransaction][t.ID] {
			continue
		}
		m.mergeTransaction(ctx, t, &stats)
	}
	for _, c := range data.Categories {
		if keepLocal[models.EntityCategory][c.ID] {
			continue
		}
		m.mergeCategory(ctx, c, &stats)
	}
	for _, a := range data.Accounts {
		if keepLocal[models.EntityAccount][a.ID] {
			continue
		}
		m.mergeAccount(ctx, a, &stats)
	}

	if len(data.Settings) > 0 {
		local, err := m.storages.Settings.Get(ctx)
		if err != nil {
			return models.MergeResult{Stats: stats}, fmt.Errorf("%w: settings: %w", ErrStorageRead, err)
		}
		if err := m.storages.Settings.Put(ctx, local.Merged(data.Settings)); err != nil {
			return models.MergeResult{Stats: stats}, fmt.Errorf("%w: settings: %w", ErrStorageWrite, err)
		}
	}

	log.Info().
		Str("func", "mergeService.MergeData").
		Int("added", stats.Added()).
		Int("updated", stats.Updated()).
		Int("failed", len(stats.Failed)).
		Msg("merge finished")

	return models.MergeResult{Stats: stats, Success: true}, nil
}

// resolveKeepLocal marks every conflicting entity the user chose to keep
// local. A missing choice defaults to local, so an incomplete choice list can
// never overwrite a local record silently.
func resolveKeepLocal(conflicts []models.Conflict, choices []models.Choice) map[models.EntityType]map[string]bool {
	keepLocal := map[models.EntityType]map[string]bool{
		models.EntityTransaction: {},
		models.EntityCategory:    {},
		models.EntityAccount:     {},
	}
	for i, conflict := range conflicts {
		choice := models.ChoiceLocal
		if i < len(choices) {
			choice = choices[i]
		}
		if choice != models.ChoiceImported {
			keepLocal[conflict.Type][conflict.ID] = true
		}
	}
	return keepLocal
}

func (m *mergeService) mergeTransaction(ctx context.Context, t models.Transaction, stats *models.MergeStats) {
	err := m.storages.Transactions.Update(ctx, t)
	switch {
	case err == nil:
		stats.TransactionsUpdated++
	case errors.Is(err, store.ErrNotFound):
		if addErr := m.storages.Transactions.Add(ctx, t); addErr != nil {
			m.recordFailure(ctx, stats, models.EntityTransaction, t.ID, addErr)
			return
		}
		stats.TransactionsAdded++
	default:
		m.recordFailure(ctx, stats, models.EntityTransaction, t.ID, err)
	}
}

func (m *mergeService) mergeCategory(ctx context.Context, c models.Category, stats *models.MergeStats) {
	err := m.storages.Categories.Update(ctx, c)
	switch {
	case err == nil:
		stats.CategoriesUpdated++
	case errors.Is(err, store.ErrNotFound):
		if addErr := m.storages.Categories.Add(ctx, c); addErr != nil {
			m.recordFailure(ctx, stats, models.EntityCategory, c.ID, addErr)
			return
		}
		stats.CategoriesAdded++
	default:
		m.recordFailure(ctx, stats, models.EntityCategory, c.ID, err)
	}
}

func (m *mergeService) mergeAccount(ctx context.Context, a models.Account, stats *models.MergeStats) {
	err := m.storages.Accounts.Update(ctx, a)
	switch {
	case err == nil:
		stats.AccountsUpdated++
	case errors.Is(err, store.ErrNotFound):
		if addErr := m.storages.Accounts.Add(ctx, a); addErr != nil {
			m.recordFailure(ctx, stats, models.EntityAccount, a.ID, addErr)
			return
		}
		stats.AccountsAdded++
	default:
		m.recordFailure(ctx, stats, models.EntityAccount, a.ID, err)
	}
}

func (m *mergeService) recordFailure(ctx context.Context, stats *models.MergeStats, entityType models.EntityType, id string, err error) {
	logger.FromContext(ctx).Err(err).
		Str("func", "mergeService.recordFailure").
		Str("type", string(entityType)).
		Str("id", id).
		Msg("record merge failed")

	stats.Failed = append(stats.Failed, models.RecordFailure{
		Type:   entityType,
		ID:     id,
		Reason: err.Error(),
	})
}
