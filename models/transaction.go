package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type discriminators used by the dashboard ledger.
const (
	TransactionExpense = "expense"
	TransactionIncome  = "income"
)

// Transaction is a single ledger entry. The ID is caller-assigned and stable
// across devices; it is the join key for conflict detection during import.
type Transaction struct {
	ID          string          `json:"id" validate:"required"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
	UpdatedAt   time.Time       `json:"updatedAt,omitzero"`
}

// TrackedFieldsEqual reports whether two versions of the same transaction
// agree on the tracked comparison set: amount, description, category, date
// and type. Untracked fields such as Notes never count towards a conflict.
func (t Transaction) TrackedFieldsEqual(other Transaction) bool {
	return t.Amount.Equal(other.Amount) &&
		t.Description == other.Description &&
		t.Category == other.Category &&
		t.Date == other.Date &&
		t.Type == other.Type
}
