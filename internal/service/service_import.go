package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/validators"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type importService struct {
	detector  ConflictDetector
	merger    MergeService
	validator validators.Validator
	logger    *logger.Logger

	// busy is the advisory single-writer lock around the import pipeline.
	// Storage itself is not locked; this only rejects a second concurrent
	// import attempt from the same process.
	busy sync.Mutex
}

func NewImportService(detector ConflictDetector, merger MergeService, logger *logger.Logger) ImportService {
	return &importService{
		detector:  detector,
		merger:    merger,
		validator: validators.NewSnapshotValidator(),
		logger:    logger,
	}
}

func (s *importService) ImportSyncData(ctx context.Context, r io.Reader, resolver ConflictResolver) models.ImportResult {
	if !s.busy.TryLock() {
		return models.ImportResult{
			Success: false,
			Message: "another import is already running",
			Err:     ErrImportInProgress,
		}
	}
	defer s.busy.Unlock()

	log := logger.FromContext(ctx)

	content, err := io.ReadAll(r)
	if err != nil {
		return models.ImportResult{
			Success: false,
			Message: "could not read the selected file",
			Err:     err,
		}
	}

	snapshot, err := parseSnapshot(ctx, s.validator, content)
	if err != nil {
		return importValidationResult(ctx, err)
	}

	conflicts, err := s.detector.DetectConflicts(ctx, snapshot.Data)
	if err != nil {
		log.Err(err).
			Str("func", "importService.ImportSyncData").
			Msg("conflict detection failed")
		return models.ImportResult{
			Success: false,
			Message: "could not compare the file against local data",
			Err:     err,
		}
	}

	var choices []models.Choice
	if len(conflicts) > 0 {
		resolution, err := resolver.Resolve(ctx, conflicts)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return cancelledResult(len(conflicts))
			}
			return models.ImportResult{
				Success:   false,
				Message:   "conflict resolution failed",
				Conflicts: len(conflicts),
				Err:       err,
			}
		}
		if !resolution.Proceed {
			return cancelledResult(len(conflicts))
		}
		choices = resolution.Choices
	}

	result, err := s.merger.MergeData(ctx, snapshot.Data, conflicts, choices)
	if err != nil {
		log.Err(err).
			Str("func", "importService.ImportSyncData").
			Msg("merge aborted")
		return models.ImportResult{
			Success:   false,
			Message:   "merge failed, some changes may already be applied",
			Stats:     &result.Stats,
			Conflicts: len(conflicts),
			Err:       err,
		}
	}

	message := fmt.Sprintf("import finished: %d added, %d updated", result.Stats.Added(), result.Stats.Updated())
	if failed := len(result.Stats.Failed); failed > 0 {
		message = fmt.Sprintf("%s, %d failed", message, failed)
	}

	log.Info().
		Str("func", "importService.ImportSyncData").
		Str("sourceDevice", snapshot.DeviceID).
		Int("conflicts", len(conflicts)).
		Int("added", result.Stats.Added()).
		Int("updated", result.Stats.Updated()).
		Int("failed", len(result.Stats.Failed)).
		Msg("sync import finished")

	return models.ImportResult{
		Success:   true,
		Message:   message,
		Stats:     &result.Stats,
		Conflicts: len(conflicts),
	}
}

func cancelledResult(conflicts int) models.ImportResult {
	return models.ImportResult{
		Success:   false,
		Message:   "cancelled by user",
		Conflicts: conflicts,
		Err:       ErrUserCancelled,
	}
}

// importValidationResult maps a parse or schema failure onto the user-facing
// result. Every path here runs before any storage mutation.
func importValidationResult(ctx context.Context, err error) models.ImportResult {
	log := logger.FromContext(ctx)
	log.Err(err).
		Str("func", "importService.ImportSyncData").
		Msg("sync file rejected")

	switch {
	case errors.Is(err, ErrWrongFileType):
		return models.ImportResult{
			Success: false,
			Message: "this is a full backup file, use restore instead",
			Err:     err,
		}
	case errors.Is(err, ErrParse):
		return models.ImportResult{
			Success: false,
			Message: "the selected file is not valid JSON",
			Err:     err,
		}
	default:
		if schemaErr, ok := validators.AsSchemaError(err); ok {
			return models.ImportResult{
				Success: false,
				Message: fmt.Sprintf("sync file is missing or has invalid fields: %s", strings.Join(schemaErr.Fields, ", ")),
				Err:     err,
			}
		}
		return models.ImportResult{
			Success: false,
			Message: "could not read the sync file",
			Err:     err,
		}
	}
}
