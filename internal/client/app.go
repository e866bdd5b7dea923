package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/config"
	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/service"
	"github.com/Gil100/Personal-Finance--sub001/internal/tui"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	sync     config.ClientSync
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, sync config.ClientSync, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, sync: sync, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	// Mint the device identity up front so every screen and export already
	// has one.
	deviceID, err := a.services.Device.GetOrCreateDeviceID(ctx)
	if err != nil {
		return fmt.Errorf("device identity: %w", err)
	}
	a.logger.Info().Str("deviceID", deviceID).Msg("client session started")

	// Entries left over from the previous session have served their purpose
	// once the reminder state is known.
	if err = a.services.SyncQueue.Drain(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("drain pending sync queue")
	}

	a.services.Reminder.Start(ctx, a.sync.ReminderInterval, a.sync.ReminderThreshold, a.tui.NotifySyncOverdue)
	defer a.services.Reminder.Stop()

	runErr := a.tui.Run(ctx)
	if runErr != nil && !errors.Is(runErr, tui.ErrUserQuit) {
		return runErr
	}

	// Closing the session leaves local changes unsynced until the next
	// export; note it so the next session can remind the user.
	if err = a.services.SyncQueue.RecordPending(ctx, models.SyncActionFullBackup); err != nil {
		a.logger.Warn().Err(err).Msg("record pending sync entry")
	}

	a.logger.Info().Msg("client session finished")
	return nil
}
