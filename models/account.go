package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a money source or destination (bank account, credit card, cash).
type Account struct {
	ID        string          `json:"id" validate:"required"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt,omitzero"`
}

// TrackedFieldsEqual compares the tracked field set for accounts:
// name, type, balance and currency.
func (a Account) TrackedFieldsEqual(other Account) bool {
	return a.Name == other.Name &&
		a.Type == other.Type &&
		a.Balance.Equal(other.Balance) &&
		a.Currency == other.Currency
}
