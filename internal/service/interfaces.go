package service

import (
	"context"
	"io"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

// DeviceService manages the opaque token distinguishing one installation from
// another. The token is created lazily on first use and persisted for the
// lifetime of the device.
type DeviceService interface {
	// GetOrCreateDeviceID returns the persisted device identity, generating
	// and persisting a fresh one when none exists yet. Two calls without an
	// intervening reset always return the same value.
	GetOrCreateDeviceID(ctx context.Context) (string, error)

	// ResetDeviceID discards the persisted identity so the next
	// GetOrCreateDeviceID call mints a new one. Used for troubleshooting;
	// has no effect on previously synced data.
	ResetDeviceID(ctx context.Context) error

	// LastSyncTime returns the time of the last successful sync export, or
	// store.ErrNotFound when no sync has completed yet.
	LastSyncTime(ctx context.Context) (time.Time, error)
}

// SnapshotService assembles the full local dataset into a transferable
// snapshot.
type SnapshotService interface {
	// GenerateSyncData reads all four collections and builds a versioned,
	// timestamped, device-tagged snapshot. The operation is all-or-nothing:
	// if any read fails, no snapshot is produced and the error wraps
	// ErrStorageRead. Metadata counts are taken from the same reads.
	GenerateSyncData(ctx context.Context) (models.Snapshot, error)
}

// ExportSink is the filesystem port the exporter writes through, so the sync
// core stays testable without touching a real directory.
type ExportSink interface {
	// Write stores content under the given file name and returns the full
	// path of the written artifact.
	Write(ctx context.Context, name string, content []byte) (string, error)
}

// ExportService turns snapshots into files a user can carry between devices.
type ExportService interface {
	// ExportForSync generates a snapshot, serializes it to JSON and writes it
	// through the sink as finance-sync-<deviceID>-<YYYY-MM-DD>.json. The
	// last-sync time is updated only after the file is safely written; any
	// failure leaves it untouched.
	ExportForSync(ctx context.Context) models.ExportResult

	// ExportFullBackup writes the same dataset wrapped in a full_backup
	// envelope as finance-backup-<YYYY-MM-DD>.json. Backup files are meant
	// for the restore path, never for sync import.
	ExportFullBackup(ctx context.Context) models.ExportResult
}

// ConflictDetector compares an imported dataset against local storage.
type ConflictDetector interface {
	// DetectConflicts emits one Conflict per entity id that exists on both
	// sides with differing tracked fields. The result order is the
	// snapshot-appearance order of the imported records (transactions, then
	// categories, then accounts), so the same inputs always produce the same
	// conflict list. Records present on only one side are never conflicts.
	DetectConflicts(ctx context.Context, data models.SnapshotData) ([]models.Conflict, error)
}

// ConflictResolver is the user-decision port of the import pipeline. The
// pipeline suspends on Resolve until the user confirms or cancels.
type ConflictResolver interface {
	// Resolve presents the conflicts and collects one choice per conflict.
	// Returning a Resolution with Proceed false aborts the import with no
	// storage mutation. Cancelling ctx aborts the wait and returns ctx.Err().
	Resolve(ctx context.Context, conflicts []models.Conflict) (models.Resolution, error)
}

// MergeService reconciles an imported dataset into local storage.
type MergeService interface {
	// MergeData drops every entity resolved as local, then merges the rest:
	// records whose id exists locally are updated, the others inserted.
	// A failed update that is not a missing-row error is recorded as a
	// per-record failure and the merge continues. Settings are shallow-merged
	// key by key, imported values winning. Only storage-level errors on the
	// settings object abort the merge; applied writes are not rolled back.
	MergeData(ctx context.Context, data models.SnapshotData, conflicts []models.Conflict, choices []models.Choice) (models.MergeResult, error)
}

// ImportService runs the whole sync-import pipeline.
type ImportService interface {
	// ImportSyncData reads a sync file, validates it (envelope discriminator
	// first, then JSON parse, then schema), detects conflicts, lets resolver
	// decide, and merges. A second call while one import is in flight is
	// rejected with ErrImportInProgress. Validation failures and user
	// cancellation leave storage untouched.
	ImportSyncData(ctx context.Context, r io.Reader, resolver ConflictResolver) models.ImportResult
}

// RestoreConfirmer is the user-decision port of the restore pipeline. Restore
// replaces local data wholesale, so it never proceeds without confirmation.
type RestoreConfirmer interface {
	// Confirm presents the backup summary and reports whether the user
	// accepted the destructive restore.
	Confirm(ctx context.Context, backup models.BackupEnvelope) (bool, error)
}

// RestoreService loads a full-backup file over local storage.
type RestoreService interface {
	// RestoreBackup validates the full_backup envelope (rejecting plain sync
	// snapshots), asks confirm for permission, then replaces every local
	// collection with the backup contents.
	RestoreBackup(ctx context.Context, r io.Reader, confirm RestoreConfirmer) models.RestoreResult
}

// SyncQueueService tracks advisory pending-sync entries. There is no
// transport behind the queue; draining it only clears the reminder state.
type SyncQueueService interface {
	// RecordPending appends an entry for the given action, stamped with the
	// device identity and current time.
	RecordPending(ctx context.Context, action string) error

	// Pending lists the recorded entries oldest first.
	Pending(ctx context.Context) ([]models.SyncQueueEntry, error)

	// Drain clears the queue regardless of entry contents.
	Drain(ctx context.Context) error
}

// ReminderJob is a background worker that periodically checks how long ago
// the last successful sync happened.
type ReminderJob interface {
	// Start launches the background goroutine. Every interval it compares
	// the elapsed time since the last sync against threshold and calls
	// notify with the elapsed duration when the threshold is exceeded. Any
	// previously running job is stopped first. The goroutine exits when ctx
	// is cancelled or Stop is called.
	Start(ctx context.Context, interval, threshold time.Duration, notify func(elapsed time.Duration))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
