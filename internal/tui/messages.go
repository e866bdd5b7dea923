package tui

import (
	"time"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

type exportDoneMsg struct {
	result models.ExportResult
}

type importDoneMsg struct {
	result models.ImportResult
}

type restoreDoneMsg struct {
	result models.RestoreResult
}

// conflictsPromptMsg suspends the import pipeline: the UI collects one choice
// per conflict and answers on reply.
type conflictsPromptMsg struct {
	conflicts []models.Conflict
	reply     chan<- models.Resolution
}

// restorePromptMsg suspends the restore pipeline until the user confirms or
// declines the destructive replace.
type restorePromptMsg struct {
	backup models.BackupEnvelope
	reply  chan<- bool
}

type statusLoadedMsg struct {
	deviceID string
	lastSync time.Time
	synced   bool
	pending  int
	err      error
}

type reminderMsg struct {
	elapsed time.Duration
}

type copiedMsg struct{}

type clearStatusMsg struct{}
