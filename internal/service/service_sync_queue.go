package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/internal/utils"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type syncQueueService struct {
	repo   store.SyncQueueRepository
	device DeviceService
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

func NewSyncQueueService(repo store.SyncQueueRepository, device DeviceService, logger *logger.Logger) SyncQueueService {
	return &syncQueueService{
		repo:   repo,
		device: device,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *syncQueueService) RecordPending(ctx context.Context, action string) error {
	deviceID, err := s.device.GetOrCreateDeviceID(ctx)
	if err != nil {
		return err
	}

	entry := models.SyncQueueEntry{
		ID:        s.uuid.Generate(),
		Timestamp: time.Now(),
		Action:    action,
		DeviceID:  deviceID,
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("%w: sync queue: %w", ErrStorageWrite, err)
	}

	return nil
}

func (s *syncQueueService) Pending(ctx context.Context) ([]models.SyncQueueEntry, error) {
	entries, err := s.repo.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: sync queue: %w", ErrStorageRead, err)
	}
	return entries, nil
}

// Drain clears the queue. There is no transport to flush the entries to, so
// processing them is the clearing. Placeholder for a future server sync.
func (s *syncQueueService) Drain(ctx context.Context) error {
	log := logger.FromContext(ctx)

	entries, err := s.repo.Pending(ctx)
	if err != nil {
		return fmt.Errorf("%w: sync queue: %w", ErrStorageRead, err)
	}
	if len(entries) == 0 {
		return nil
	}

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: sync queue: %w", ErrStorageWrite, err)
	}

	log.Info().
		Str("func", "syncQueueService.Drain").
		Int("entries", len(entries)).
		Msg("pending sync queue cleared")

	return nil
}
