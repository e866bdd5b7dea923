package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

// settingsRepository stores the settings object one row per key with a
// JSON-encoded value, so arbitrary value types survive a round trip.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllSettings)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Msg("failed to query settings")
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := models.Settings{}

	for rows.Next() {
		var key, raw string
		if scanErr := rows.Scan(&key, &raw); scanErr != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", scanErr)
		}

		var value any
		if unmarshalErr := json.Unmarshal([]byte(raw), &value); unmarshalErr != nil {
			log.Err(unmarshalErr).
				Str("func", "settingsRepository.Get").
				Str("key", key).
				Msg("failed to decode stored setting value")
			return nil, fmt.Errorf("invalid stored value for setting %s: %w", key, unmarshalErr)
		}
		settings[key] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", rowsErr)
	}

	return settings, nil
}

func (r *settingsRepository) Put(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx)

	for key, value := range s {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode setting %s: %w", key, err)
		}
		if _, err = r.DB.ExecContext(ctx, upsertSetting, key, string(raw)); err != nil {
			log.Err(err).
				Str("func", "settingsRepository.Put").
				Str("key", key).
				Msg("failed to upsert setting")
			return fmt.Errorf("failed to upsert setting %s: %w", key, err)
		}
	}

	return nil
}

func (r *settingsRepository) Replace(ctx context.Context, s models.Settings) error {
	if _, err := r.DB.ExecContext(ctx, deleteAllSettings); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	return r.Put(ctx, s)
}
