package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/internal/utils"
)

type deviceService struct {
	repo   store.DeviceRepository
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewDeviceService creates a DeviceService backed by the device repository.
// Fresh identities are UUIDv7 strings, so they carry a time-ordered component
// plus randomness without any coordination between devices.
func NewDeviceService(repo store.DeviceRepository, logger *logger.Logger) DeviceService {
	return &deviceService{
		repo:   repo,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *deviceService) GetOrCreateDeviceID(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	deviceID, err := s.repo.GetDeviceID(ctx)
	if err == nil {
		return deviceID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: read device id: %w", ErrStorageRead, err)
	}

	deviceID = s.uuid.Generate()
	if err := s.repo.SaveDeviceID(ctx, deviceID); err != nil {
		return "", fmt.Errorf("%w: persist device id: %w", ErrStorageWrite, err)
	}

	log.Info().
		Str("func", "deviceService.GetOrCreateDeviceID").
		Str("deviceID", deviceID).
		Msg("created new device identity")

	return deviceID, nil
}

func (s *deviceService) ResetDeviceID(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteDeviceID(ctx); err != nil {
		return fmt.Errorf("%w: reset device id: %w", ErrStorageWrite, err)
	}

	log.Info().
		Str("func", "deviceService.ResetDeviceID").
		Msg("device identity discarded")

	return nil
}

func (s *deviceService) LastSyncTime(ctx context.Context) (time.Time, error) {
	return s.repo.LastSyncTime(ctx)
}
