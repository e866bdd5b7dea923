package models

// RecordFailure is a per-record merge error that did not abort the merge.
// Failures are aggregated and surfaced to the caller instead of being
// silently retried as inserts.
type RecordFailure struct {
	Type   EntityType `json:"type"`
	ID     string     `json:"id"`
	Reason string     `json:"reason"`
}

// MergeStats aggregates the outcome of one merge: per-collection insert and
// update counts plus any per-record failures.
type MergeStats struct {
	TransactionsAdded   int             `json:"transactionsAdded"`
	TransactionsUpdated int             `json:"transactionsUpdated"`
	CategoriesAdded     int             `json:"categoriesAdded"`
	CategoriesUpdated   int             `json:"categoriesUpdated"`
	AccountsAdded       int             `json:"accountsAdded"`
	AccountsUpdated     int             `json:"accountsUpdated"`
	Failed              []RecordFailure `json:"failed,omitempty"`
}

// Added returns the total number of inserted records across all collections.
func (s MergeStats) Added() int {
	return s.TransactionsAdded + s.CategoriesAdded + s.AccountsAdded
}

// Updated returns the total number of updated records across all collections.
func (s MergeStats) Updated() int {
	return s.TransactionsUpdated + s.CategoriesUpdated + s.AccountsUpdated
}

// MergeResult is produced once per import and used for the user-facing
// summary; it is not persisted.
type MergeResult struct {
	Stats   MergeStats `json:"stats"`
	Success bool       `json:"success"`
}
