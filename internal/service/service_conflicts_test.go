package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

func groceriesLocal() models.Transaction {
	return models.Transaction{
		ID:          "t1",
		Type:        models.TransactionExpense,
		Amount:      decimal.NewFromInt(-100),
		Description: "Groceries",
		Category:    "food",
		Date:        "2024-02-01",
		Notes:       "old",
	}
}

func TestDetectConflicts_TrackedFieldDiffers(t *testing.T) {
	storages, mem := newMemStorages()
	detector := NewConflictDetector(storages, logger.Nop())
	ctx := context.Background()

	local := groceriesLocal()
	mem.transactions.items[local.ID] = local

	imported := local
	imported.Amount = decimal.NewFromInt(-150)
	imported.Notes = "new"

	conflicts, err := detector.DetectConflicts(ctx, models.SnapshotData{
		Transactions: []models.Transaction{imported},
	})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)

	conflict := conflicts[0]
	assert.Equal(t, models.EntityTransaction, conflict.Type)
	assert.Equal(t, "t1", conflict.ID)
	assert.Equal(t, local, conflict.Local)
	assert.Equal(t, imported, conflict.Imported)
	assert.Contains(t, conflict.Description, "Groceries")
}

func TestDetectConflicts_UntrackedFieldsIgnored(t *testing.T) {
	storages, mem := newMemStorages()
	detector := NewConflictDetector(storages, logger.Nop())
	ctx := context.Background()

	local := groceriesLocal()
	mem.transactions.items[local.ID] = local

	// only the untracked notes field differs
	imported := local
	imported.Notes = "completely different"

	conflicts, err := detector.DetectConflicts(ctx, models.SnapshotData{
		Transactions: []models.Transaction{imported},
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflicts_OneSidedRecordsAreNotConflicts(t *testing.T) {
	storages, mem := newMemStorages()
	detector := NewConflictDetector(storages, logger.Nop())
	ctx := context.Background()

	mem.transactions.items["local-only"] = models.Transaction{ID: "local-only", Description: "here"}

	conflicts, err := detector.DetectConflicts(ctx, models.SnapshotData{
		Transactions: []models.Transaction{{ID: "import-only", Description: "there"}},
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflicts_AllCollectionsCovered(t *testing.T) {
	storages, mem := newMemStorages()
	detector := NewConflictDetector(storages, logger.Nop())
	ctx := context.Background()

	mem.transactions.items["t1"] = models.Transaction{ID: "t1", Description: "coffee", Amount: decimal.NewFromInt(-10)}
	mem.categories.items["c1"] = models.Category{ID: "c1", Name: "Food", Color: "#ff0000"}
	mem.accounts.items["a1"] = models.Account{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(500), Currency: "ILS"}

	data := models.SnapshotData{
		Transactions: []models.Transaction{{ID: "t1", Description: "coffee", Amount: decimal.NewFromInt(-12)}},
		Categories:   []models.Category{{ID: "c1", Name: "Food", Color: "#00ff00"}},
		Accounts:     []models.Account{{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(700), Currency: "ILS"}},
	}

	conflicts, err := detector.DetectConflicts(ctx, data)
	require.NoError(t, err)
	require.Len(t, conflicts, 3)

	// snapshot-appearance order: transactions, then categories, then accounts
	assert.Equal(t, models.EntityTransaction, conflicts[0].Type)
	assert.Equal(t, models.EntityCategory, conflicts[1].Type)
	assert.Equal(t, models.EntityAccount, conflicts[2].Type)
}

func TestDetectConflicts_DeterministicOrder(t *testing.T) {
	storages, mem := newMemStorages()
	detector := NewConflictDetector(storages, logger.Nop())
	ctx := context.Background()

	for _, id := range []string{"t1", "t2", "t3"} {
		mem.transactions.items[id] = models.Transaction{ID: id, Description: "local " + id}
	}

	data := models.SnapshotData{Transactions: []models.Transaction{
		{ID: "t3", Description: "changed"},
		{ID: "t1", Description: "changed"},
		{ID: "t2", Description: "changed"},
	}}

	first, err := detector.DetectConflicts(ctx, data)
	require.NoError(t, err)
	second, err := detector.DetectConflicts(ctx, data)
	require.NoError(t, err)

	require.Equal(t, first, second)
	assert.Equal(t, "t3", first[0].ID)
	assert.Equal(t, "t1", first[1].ID)
	assert.Equal(t, "t2", first[2].ID)
}
