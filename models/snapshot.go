package models

import "github.com/shopspring/decimal"

// SchemaVersion is the snapshot schema version written on export. Imports
// accept any snapshot with the same major version.
const SchemaVersion = "1.0.0"

// EnvelopeFullBackup is the discriminator value carried by full-backup files.
// Sync import rejects payloads tagged with it; restore requires it.
const EnvelopeFullBackup = "full_backup"

func init() {
	// Snapshots produced by the web dashboard carry amounts as JSON numbers;
	// keep the wire format identical in both directions.
	decimal.MarshalJSONWithoutQuotes = true
}

// SnapshotData is the full local dataset as it travels between devices.
type SnapshotData struct {
	Transactions []Transaction `json:"transactions" validate:"dive"`
	Categories   []Category    `json:"categories" validate:"dive"`
	Accounts     []Account     `json:"accounts" validate:"dive"`
	Settings     Settings      `json:"settings"`
}

// SnapshotMetadata carries informational counts and the last local
// modification time. It is never used for correctness decisions.
type SnapshotMetadata struct {
	TotalTransactions int    `json:"totalTransactions"`
	TotalCategories   int    `json:"totalCategories"`
	TotalAccounts     int    `json:"totalAccounts"`
	LastModified      string `json:"lastModified"`
}

// Snapshot is the unit of transfer between devices: a versioned, timestamped,
// device-tagged export of the full local dataset.
type Snapshot struct {
	DeviceID  string           `json:"deviceId" validate:"required"`
	Timestamp string           `json:"timestamp" validate:"required"`
	Version   string           `json:"version" validate:"required"`
	Data      SnapshotData     `json:"data"`
	Metadata  SnapshotMetadata `json:"metadata"`
}

// BackupEnvelope wraps the same dataset for disaster recovery. The Type
// discriminator keeps backup files out of the sync-import path.
type BackupEnvelope struct {
	Type      string       `json:"type"`
	Timestamp string       `json:"timestamp"`
	DeviceID  string       `json:"deviceId"`
	Data      SnapshotData `json:"data"`
}
