package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

// fileExportSink writes export artifacts into a configured directory.
type fileExportSink struct {
	dir string
}

func NewFileExportSink(dir string) ExportSink {
	return &fileExportSink{dir: dir}
}

func (s *fileExportSink) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

type exportService struct {
	snapshot SnapshotService
	device   store.DeviceRepository
	sink     ExportSink
	logger   *logger.Logger

	// now is swapped in tests for deterministic filenames
	now func() time.Time
}

func NewExportService(snapshot SnapshotService, device store.DeviceRepository, sink ExportSink, logger *logger.Logger) ExportService {
	return &exportService{
		snapshot: snapshot,
		device:   device,
		sink:     sink,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *exportService) ExportForSync(ctx context.Context) models.ExportResult {
	log := logger.FromContext(ctx)

	snapshot, err := s.snapshot.GenerateSyncData(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "exportService.ExportForSync").
			Msg("snapshot generation failed")
		return models.ExportResult{
			Success: false,
			Message: "could not read local data for export",
			Err:     err,
		}
	}

	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return models.ExportResult{
			Success: false,
			Message: "could not serialize sync data",
			Err:     err,
		}
	}

	name := fmt.Sprintf("finance-sync-%s-%s.json", snapshot.DeviceID, s.now().Format("2006-01-02"))
	path, err := s.sink.Write(ctx, name, content)
	if err != nil {
		log.Err(err).
			Str("func", "exportService.ExportForSync").
			Str("file", name).
			Msg("failed to write sync file")
		return models.ExportResult{
			Success: false,
			Message: "could not write sync file",
			Err:     err,
		}
	}

	// the last-sync marker only feeds the overdue reminder, so a failure to
	// record it does not undo a successful export
	if err := s.device.SetLastSyncTime(ctx, s.now()); err != nil {
		log.Warn().Err(err).
			Str("func", "exportService.ExportForSync").
			Msg("sync file written but last sync time was not recorded")
	}

	log.Info().
		Str("func", "exportService.ExportForSync").
		Str("file", path).
		Msg("sync file exported")

	return models.ExportResult{
		Success:  true,
		Message:  "sync file exported",
		Filename: path,
	}
}

func (s *exportService) ExportFullBackup(ctx context.Context) models.ExportResult {
	log := logger.FromContext(ctx)

	snapshot, err := s.snapshot.GenerateSyncData(ctx)
	if err != nil {
		return models.ExportResult{
			Success: false,
			Message: "could not read local data for backup",
			Err:     err,
		}
	}

	backup := models.BackupEnvelope{
		Type:      models.EnvelopeFullBackup,
		Timestamp: snapshot.Timestamp,
		DeviceID:  snapshot.DeviceID,
		Data:      snapshot.Data,
	}

	content, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return models.ExportResult{
			Success: false,
			Message: "could not serialize backup data",
			Err:     err,
		}
	}

	name := fmt.Sprintf("finance-backup-%s.json", s.now().Format("2006-01-02"))
	path, err := s.sink.Write(ctx, name, content)
	if err != nil {
		return models.ExportResult{
			Success: false,
			Message: "could not write backup file",
			Err:     err,
		}
	}

	log.Info().
		Str("func", "exportService.ExportFullBackup").
		Str("file", path).
		Msg("backup file exported")

	return models.ExportResult{
		Success:  true,
		Message:  "backup file exported",
		Filename: path,
	}
}
