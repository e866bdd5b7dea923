package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type syncQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	return &syncQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncQueueRepository) Append(ctx context.Context, e models.SyncQueueEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertSyncQueueEntry,
		e.ID,
		e.Timestamp,
		e.Action,
		e.DeviceID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Append").
			Str("id", e.ID).
			Msg("failed to append sync queue entry")
		return fmt.Errorf("failed to append sync queue entry %s: %w", e.ID, err)
	}

	return nil
}

func (r *syncQueueRepository) Pending(ctx context.Context) ([]models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectPendingSyncQueue)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Pending").
			Msg("failed to query sync queue")
		return nil, fmt.Errorf("failed to query sync queue: %w", err)
	}
	defer rows.Close()

	var entries []models.SyncQueueEntry

	for rows.Next() {
		var (
			e         models.SyncQueueEntry
			timestamp sql.NullTime
		)
		if scanErr := rows.Scan(&e.ID, &timestamp, &e.Action, &e.DeviceID); scanErr != nil {
			return nil, fmt.Errorf("failed to scan sync queue row: %w", scanErr)
		}
		if timestamp.Valid {
			e.Timestamp = timestamp.Time
		}
		entries = append(entries, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating sync queue rows: %w", rowsErr)
	}

	return entries, nil
}

func (r *syncQueueRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearSyncQueue); err != nil {
		return fmt.Errorf("failed to clear sync queue: %w", err)
	}
	return nil
}
