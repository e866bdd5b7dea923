package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

func TestRecordPending_StampsEntryWithDeviceID(t *testing.T) {
	storages, mem := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	queue := NewSyncQueueService(storages.SyncQueue, device, logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.RecordPending(ctx, models.SyncActionFullBackup))

	deviceID, err := device.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)

	entries, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.SyncActionFullBackup, entries[0].Action)
	assert.Equal(t, deviceID, entries[0].DeviceID)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Len(t, mem.syncQueue.entries, 1)
}

func TestDrain_ClearsQueueRegardlessOfContents(t *testing.T) {
	storages, mem := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	queue := NewSyncQueueService(storages.SyncQueue, device, logger.Nop())
	ctx := context.Background()

	require.NoError(t, queue.RecordPending(ctx, models.SyncActionFullBackup))
	require.NoError(t, queue.RecordPending(ctx, models.SyncActionFullBackup))

	require.NoError(t, queue.Drain(ctx))

	entries, err := queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, mem.syncQueue.entries)
}

func TestDrain_EmptyQueueIsNoOp(t *testing.T) {
	storages, _ := newMemStorages()
	device := NewDeviceService(storages.Device, logger.Nop())
	queue := NewSyncQueueService(storages.SyncQueue, device, logger.Nop())

	assert.NoError(t, queue.Drain(context.Background()))
}
