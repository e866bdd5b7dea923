package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
)

type deviceRepository struct {
	*DB
	logger *logger.Logger
}

func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *deviceRepository) GetDeviceID(ctx context.Context) (string, error) {
	var deviceID string

	err := r.DB.QueryRowContext(ctx, selectDeviceID).Scan(&deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read device id: %w", err)
	}

	return deviceID, nil
}

func (r *deviceRepository) SaveDeviceID(ctx context.Context, deviceID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertDeviceID, deviceID, time.Now()); err != nil {
		log.Err(err).
			Str("func", "deviceRepository.SaveDeviceID").
			Msg("failed to save device id")
		return fmt.Errorf("failed to save device id: %w", err)
	}

	return nil
}

func (r *deviceRepository) DeleteDeviceID(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteDeviceID); err != nil {
		return fmt.Errorf("failed to delete device id: %w", err)
	}
	return nil
}

func (r *deviceRepository) LastSyncTime(ctx context.Context) (time.Time, error) {
	var last sql.NullTime

	err := r.DB.QueryRowContext(ctx, selectLastSyncTime).Scan(&last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("failed to read last sync time: %w", err)
	}
	if !last.Valid {
		return time.Time{}, ErrNotFound
	}

	return last.Time, nil
}

func (r *deviceRepository) SetLastSyncTime(ctx context.Context, t time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertLastSyncTime, t); err != nil {
		log.Err(err).
			Str("func", "deviceRepository.SetLastSyncTime").
			Msg("failed to save last sync time")
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	return nil
}
