package models

import "time"

// SyncQueueEntry records that a device went offline or shut down with local
// changes, so a later session can remind the user to sync. The queue is
// advisory only: there is no transport to flush it to, and processing clears
// it regardless of outcome.
type SyncQueueEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	DeviceID  string    `json:"deviceId"`
}

// SyncActionFullBackup is the action recorded when the app shuts down with
// unsynced local changes.
const SyncActionFullBackup = "full_backup"
