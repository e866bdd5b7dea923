package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type stubConfirmer struct {
	accept bool
	seen   *models.BackupEnvelope
}

func (c *stubConfirmer) Confirm(ctx context.Context, backup models.BackupEnvelope) (bool, error) {
	c.seen = &backup
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.accept, nil
}

func backupFile(t *testing.T, data models.SnapshotData) string {
	t.Helper()

	content, err := json.Marshal(models.BackupEnvelope{
		Type:      models.EnvelopeFullBackup,
		Timestamp: "2026-08-30T12:00:00Z",
		DeviceID:  "dev-remote",
		Data:      data,
	})
	require.NoError(t, err)
	return string(content)
}

func TestRestoreBackup_ReplacesLocalDataWholesale(t *testing.T) {
	storages, mem := newMemStorages()
	restore := NewRestoreService(storages, logger.Nop())
	ctx := context.Background()

	mem.transactions.items["stale"] = models.Transaction{ID: "stale"}
	mem.settings.values = models.Settings{"stale": true}

	file := backupFile(t, models.SnapshotData{
		Transactions: []models.Transaction{{ID: "t1"}, {ID: "t2"}},
		Categories:   []models.Category{{ID: "c1"}},
		Accounts:     []models.Account{{ID: "a1"}},
		Settings:     models.Settings{"currency": "ILS"},
	})

	confirmer := &stubConfirmer{accept: true}
	result := restore.RestoreBackup(ctx, strings.NewReader(file), confirmer)

	require.True(t, result.Success, result.Message)
	assert.Equal(t, 2, result.Transactions)
	assert.Equal(t, 1, result.Categories)
	assert.Equal(t, 1, result.Accounts)

	require.NotNil(t, confirmer.seen)
	assert.Equal(t, "dev-remote", confirmer.seen.DeviceID)

	assert.NotContains(t, mem.transactions.items, "stale")
	assert.Contains(t, mem.transactions.items, "t1")
	assert.Equal(t, models.Settings{"currency": "ILS"}, mem.settings.values)
}

func TestRestoreBackup_DeclinedConfirmationIsNoOp(t *testing.T) {
	storages, mem := newMemStorages()
	restore := NewRestoreService(storages, logger.Nop())
	ctx := context.Background()

	mem.transactions.items["keep"] = models.Transaction{ID: "keep"}

	file := backupFile(t, models.SnapshotData{
		Transactions: []models.Transaction{{ID: "t1"}},
	})

	result := restore.RestoreBackup(ctx, strings.NewReader(file), &stubConfirmer{accept: false})

	assert.False(t, result.Success)
	assert.Equal(t, "cancelled by user", result.Message)
	assert.ErrorIs(t, result.Err, ErrUserCancelled)
	assert.Contains(t, mem.transactions.items, "keep")
	assert.NotContains(t, mem.transactions.items, "t1")
}

func TestRestoreBackup_SyncSnapshotRejected(t *testing.T) {
	storages, mem := newMemStorages()
	restore := NewRestoreService(storages, logger.Nop())
	ctx := context.Background()

	mem.transactions.items["keep"] = models.Transaction{ID: "keep"}

	// a plain sync snapshot has no type discriminator
	snapshot := models.Snapshot{
		DeviceID:  "dev-remote",
		Timestamp: "2026-08-30T12:00:00Z",
		Version:   models.SchemaVersion,
		Data: models.SnapshotData{
			Transactions: []models.Transaction{{ID: "t1"}},
		},
	}
	content, err := json.Marshal(snapshot)
	require.NoError(t, err)

	confirmer := &stubConfirmer{accept: true}
	result := restore.RestoreBackup(ctx, strings.NewReader(string(content)), confirmer)

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrWrongFileType)
	assert.Nil(t, confirmer.seen, "rejection happens before the confirmation prompt")
	assert.Contains(t, mem.transactions.items, "keep")
}

func TestRestoreBackup_InvalidJSONRejected(t *testing.T) {
	storages, _ := newMemStorages()
	restore := NewRestoreService(storages, logger.Nop())

	result := restore.RestoreBackup(context.Background(), strings.NewReader("{broken"), &stubConfirmer{accept: true})

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrParse)
}
