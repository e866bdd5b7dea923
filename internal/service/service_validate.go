package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/validators"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

// parseSnapshot turns raw sync-file content into a validated snapshot.
// Checks run in a fixed order so each failure class maps to one error:
//  1. envelope discriminator: full_backup files never enter the sync path
//  2. JSON well-formedness: ErrParse
//  3. structural schema: required fields present, collections are arrays
//  4. typed decode plus per-entity validation
//
// No storage is touched at any point.
func parseSnapshot(ctx context.Context, validator validators.Validator, content []byte) (models.Snapshot, error) {
	var raw validators.RawSnapshot
	if err := json.Unmarshal(content, &raw); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if raw.Type != nil && *raw.Type == models.EnvelopeFullBackup {
		return models.Snapshot{}, fmt.Errorf("%w: full_backup file on the sync path", ErrWrongFileType)
	}

	if err := validator.Validate(ctx, raw); err != nil {
		return models.Snapshot{}, err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(content, &snapshot); err != nil {
		// the file is valid JSON, so a failure here means a field carries
		// the wrong type
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return models.Snapshot{}, &validators.SchemaError{Fields: []string{typeErr.Field}}
		}
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := validator.Validate(ctx, &snapshot); err != nil {
		return models.Snapshot{}, err
	}

	return snapshot, nil
}
