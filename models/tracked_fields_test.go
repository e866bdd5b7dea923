package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_TrackedFieldsEqual(t *testing.T) {
	base := Transaction{
		ID:          "t1",
		Type:        TransactionExpense,
		Amount:      decimal.NewFromInt(-100),
		Description: "Groceries",
		Category:    "food",
		Date:        "2024-02-01",
		Notes:       "old",
	}

	t.Run("untracked notes ignored", func(t *testing.T) {
		other := base
		other.Notes = "new"
		assert.True(t, base.TrackedFieldsEqual(other))
	})

	t.Run("amount difference detected", func(t *testing.T) {
		other := base
		other.Amount = decimal.NewFromInt(-150)
		assert.False(t, base.TrackedFieldsEqual(other))
	})

	t.Run("equal decimal with different exponent", func(t *testing.T) {
		other := base
		other.Amount = decimal.RequireFromString("-100.00")
		assert.True(t, base.TrackedFieldsEqual(other))
	})
}

func TestCategory_TrackedFieldsEqual(t *testing.T) {
	base := Category{ID: "c1", Name: "Food", Type: "expense", Color: "#fff", Icon: "cart"}

	other := base
	other.CreatedAt = other.CreatedAt.AddDate(0, 0, 1)
	assert.True(t, base.TrackedFieldsEqual(other))

	other.Color = "#000"
	assert.False(t, base.TrackedFieldsEqual(other))
}

func TestSettings_Merged(t *testing.T) {
	local := Settings{"b": 9, "c": 3}
	imported := Settings{"a": 1, "b": 2}

	merged := local.Merged(imported)

	assert.Equal(t, Settings{"a": 1, "b": 2, "c": 3}, merged)
	// Inputs stay untouched.
	assert.Equal(t, Settings{"b": 9, "c": 3}, local)
	assert.Equal(t, Settings{"a": 1, "b": 2}, imported)
}
