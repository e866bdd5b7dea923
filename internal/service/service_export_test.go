package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

func TestGenerateSyncData_CountsMatchCollections(t *testing.T) {
	storages, mem := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	snapshots := NewSnapshotService(storages, device, logger.Nop())
	ctx := context.Background()

	mem.transactions.items["t1"] = models.Transaction{ID: "t1", Amount: decimal.NewFromInt(-5)}
	mem.transactions.items["t2"] = models.Transaction{ID: "t2", Amount: decimal.NewFromInt(-7)}
	mem.categories.items["c1"] = models.Category{ID: "c1"}
	mem.settings.values = models.Settings{"currency": "ILS"}

	snapshot, err := snapshots.GenerateSyncData(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.DeviceID)
	assert.Equal(t, models.SchemaVersion, snapshot.Version)
	assert.Equal(t, 2, snapshot.Metadata.TotalTransactions)
	assert.Equal(t, 1, snapshot.Metadata.TotalCategories)
	assert.Zero(t, snapshot.Metadata.TotalAccounts)
	assert.Equal(t, "ILS", snapshot.Data.Settings["currency"])
}

func TestGenerateSyncData_EmptyCollectionsAreArrays(t *testing.T) {
	storages, _ := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	snapshots := NewSnapshotService(storages, device, logger.Nop())

	snapshot, err := snapshots.GenerateSyncData(context.Background())
	require.NoError(t, err)

	content, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"transactions":[]`)
	assert.Contains(t, string(content), `"accounts":[]`)
}

func TestExportForSync_WritesFileAndRecordsSync(t *testing.T) {
	storages, mem := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	snapshots := NewSnapshotService(storages, device, logger.Nop())
	dir := t.TempDir()
	export := NewExportService(snapshots, storages.Device, NewFileExportSink(dir), logger.Nop())
	ctx := context.Background()

	mem.transactions.items["t1"] = models.Transaction{ID: "t1", Amount: decimal.NewFromInt(-42)}

	result := export.ExportForSync(ctx)
	require.True(t, result.Success, result.Message)

	deviceID, err := device.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	expectedName := fmt.Sprintf("finance-sync-%s-%s.json", deviceID, time.Now().Format("2006-01-02"))
	assert.Equal(t, filepath.Join(dir, expectedName), result.Filename)

	content, err := os.ReadFile(result.Filename)
	require.NoError(t, err)

	var snapshot models.Snapshot
	require.NoError(t, json.Unmarshal(content, &snapshot))
	assert.Equal(t, deviceID, snapshot.DeviceID)
	require.Len(t, snapshot.Data.Transactions, 1)
	assert.True(t, snapshot.Data.Transactions[0].Amount.Equal(decimal.NewFromInt(-42)))

	_, err = storages.Device.LastSyncTime(ctx)
	assert.NoError(t, err, "a successful export records the sync time")
}

func TestExportForSync_GenerationFailureLeavesLastSyncUnset(t *testing.T) {
	storages, _ := newMemStorages()
	failing := &failingSnapshotService{err: fmt.Errorf("%w: boom", ErrStorageRead)}
	export := NewExportService(failing, storages.Device, NewFileExportSink(t.TempDir()), logger.Nop())
	ctx := context.Background()

	result := export.ExportForSync(ctx)
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrStorageRead)

	_, err := storages.Device.LastSyncTime(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExportForSync_SinkFailureLeavesLastSyncUnset(t *testing.T) {
	storages, _ := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	snapshots := NewSnapshotService(storages, device, logger.Nop())
	export := NewExportService(snapshots, storages.Device, &failingSink{err: errors.New("disk full")}, logger.Nop())
	ctx := context.Background()

	result := export.ExportForSync(ctx)
	assert.False(t, result.Success)
	assert.Equal(t, "could not write sync file", result.Message)

	_, err := storages.Device.LastSyncTime(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExportFullBackup_CarriesDiscriminator(t *testing.T) {
	storages, mem := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	snapshots := NewSnapshotService(storages, device, logger.Nop())
	dir := t.TempDir()
	export := NewExportService(snapshots, storages.Device, NewFileExportSink(dir), logger.Nop())
	ctx := context.Background()

	mem.transactions.items["t1"] = models.Transaction{ID: "t1"}

	result := export.ExportFullBackup(ctx)
	require.True(t, result.Success, result.Message)

	expectedName := fmt.Sprintf("finance-backup-%s.json", time.Now().Format("2006-01-02"))
	assert.Equal(t, filepath.Join(dir, expectedName), result.Filename)

	content, err := os.ReadFile(result.Filename)
	require.NoError(t, err)

	var backup models.BackupEnvelope
	require.NoError(t, json.Unmarshal(content, &backup))
	assert.Equal(t, models.EnvelopeFullBackup, backup.Type)
	assert.Len(t, backup.Data.Transactions, 1)

	// a backup export is not a sync
	_, err = storages.Device.LastSyncTime(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

type failingSnapshotService struct {
	err error
}

func (s *failingSnapshotService) GenerateSyncData(ctx context.Context) (models.Snapshot, error) {
	return models.Snapshot{}, s.err
}

type failingSink struct {
	err error
}

func (s *failingSink) Write(ctx context.Context, name string, content []byte) (string, error) {
	return "", s.err
}
