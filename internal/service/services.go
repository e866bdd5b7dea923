package service

import (
	"github.com/Gil100/Personal-Finance--sub001/internal/config"
	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
)

type Services struct {
	Device    DeviceService
	Snapshot  SnapshotService
	Export    ExportService
	Import    ImportService
	Restore   RestoreService
	SyncQueue SyncQueueService
	Reminder  ReminderJob
}

func NewServices(storages *store.Storages, cfg *config.ClientConfig, logger *logger.Logger) *Services {
	device := NewDeviceService(storages.Device, logger)
	snapshot := NewSnapshotService(storages, device, logger)
	export := NewExportService(snapshot, storages.Device, NewFileExportSink(cfg.Export.Dir), logger)
	detector := NewConflictDetector(storages, logger)
	merger := NewMergeService(storages, logger)

	return &Services{
		Device:    device,
		Snapshot:  snapshot,
		Export:    export,
		Import:    NewImportService(detector, merger, logger),
		Restore:   NewRestoreService(storages, logger),
		SyncQueue: NewSyncQueueService(storages.SyncQueue, device, logger),
		Reminder:  NewReminderJob(device, logger),
	}
}
