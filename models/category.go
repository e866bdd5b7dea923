package models

import "time"

// Category classifies transactions. Categories travel inside sync snapshots
// together with the transactions that reference them by name.
type Category struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// TrackedFieldsEqual compares the tracked field set for categories:
// name, type, color and icon.
func (c Category) TrackedFieldsEqual(other Category) bool {
	return c.Name == other.Name &&
		c.Type == other.Type &&
		c.Color == other.Color &&
		c.Icon == other.Icon
}
