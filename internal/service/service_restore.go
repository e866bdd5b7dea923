package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type restoreService struct {
	storages *store.Storages
	logger   *logger.Logger
}

func NewRestoreService(storages *store.Storages, logger *logger.Logger) RestoreService {
	return &restoreService{
		storages: storages,
		logger:   logger,
	}
}

func (s *restoreService) RestoreBackup(ctx context.Context, r io.Reader, confirm RestoreConfirmer) models.RestoreResult {
	log := logger.FromContext(ctx)

	content, err := io.ReadAll(r)
	if err != nil {
		return models.RestoreResult{
			Success: false,
			Message: "could not read the selected file",
			Err:     err,
		}
	}

	var backup models.BackupEnvelope
	if err := json.Unmarshal(content, &backup); err != nil {
		return models.RestoreResult{
			Success: false,
			Message: "the selected file is not valid JSON",
			Err:     fmt.Errorf("%w: %w", ErrParse, err),
		}
	}

	// plain sync snapshots carry no type discriminator and must go through
	// the import path where conflicts are surfaced
	if backup.Type != models.EnvelopeFullBackup {
		return models.RestoreResult{
			Success: false,
			Message: "this is not a backup file, use sync import instead",
			Err:     fmt.Errorf("%w: %q on the restore path", ErrWrongFileType, backup.Type),
		}
	}

	accepted, err := confirm.Confirm(ctx, backup)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return restoreCancelled()
		}
		return models.RestoreResult{
			Success: false,
			Message: "restore confirmation failed",
			Err:     err,
		}
	}
	if !accepted {
		return restoreCancelled()
	}

	if err := s.replaceAll(ctx, backup.Data); err != nil {
		log.Err(err).
			Str("func", "restoreService.RestoreBackup").
			Msg("restore aborted")
		return models.RestoreResult{
			Success: false,
			Message: "restore failed, local data may be incomplete",
			Err:     err,
		}
	}

	log.Info().
		Str("func", "restoreService.RestoreBackup").
		Str("sourceDevice", backup.DeviceID).
		Int("transactions", len(backup.Data.Transactions)).
		Int("categories", len(backup.Data.Categories)).
		Int("accounts", len(backup.Data.Accounts)).
		Msg("backup restored")

	return models.RestoreResult{
		Success:      true,
		Message:      "backup restored",
		Transactions: len(backup.Data.Transactions),
		Categories:   len(backup.Data.Categories),
		Accounts:     len(backup.Data.Accounts),
	}
}

// replaceAll clears each collection and loads the backup contents. Restore is
// wholesale by design: no conflict detection, no merging.
func (s *restoreService) replaceAll(ctx context.Context, data models.SnapshotData) error {
	if err := s.storages.Transactions.DeleteAll(ctx); err != nil {
		return fmt.Errorf("%w: clear transactions: %w", ErrStorageWrite, err)
	}
	for _, t := range data.Transactions {
		if err := s.storages.Transactions.Add(ctx, t); err != nil {
			return fmt.Errorf("%w: restore transaction %s: %w", ErrStorageWrite, t.ID, err)
		}
	}

	if err := s.storages.Categories.DeleteAll(ctx); err != nil {
		return fmt.Errorf("%w: clear categories: %w", ErrStorageWrite, err)
	}
	for _, c := range data.Categories {
		if err := s.storages.Categories.Add(ctx, c); err != nil {
			return fmt.Errorf("%w: restore category %s: %w", ErrStorageWrite, c.ID, err)
		}
	}

	if err := s.storages.Accounts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("%w: clear accounts: %w", ErrStorageWrite, err)
	}
	for _, a := range data.Accounts {
		if err := s.storages.Accounts.Add(ctx, a); err != nil {
			return fmt.Errorf("%w: restore account %s: %w", ErrStorageWrite, a.ID, err)
		}
	}

	if err := s.storages.Settings.Replace(ctx, data.Settings); err != nil {
		return fmt.Errorf("%w: restore settings: %w", ErrStorageWrite, err)
	}

	return nil
}

func restoreCancelled() models.RestoreResult {
	return models.RestoreResult{
		Success: false,
		Message: "cancelled by user",
		Err:     ErrUserCancelled,
	}
}
