package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

// programResolver bridges the import pipeline, which runs inside a tea.Cmd
// goroutine, to the live UI. Resolve posts the conflict list as a message and
// blocks until the conflicts screen answers on the reply channel or ctx is
// cancelled.
type programResolver struct {
	send func(tea.Msg)
}

func (r *programResolver) Resolve(ctx context.Context, conflicts []models.Conflict) (models.Resolution, error) {
	reply := make(chan models.Resolution, 1)
	r.send(conflictsPromptMsg{conflicts: conflicts, reply: reply})

	select {
	case res := <-reply:
		return res, nil
	case <-ctx.Done():
		return models.Resolution{}, ctx.Err()
	}
}

// programConfirmer is the same bridge for the restore confirmation overlay.
type programConfirmer struct {
	send func(tea.Msg)
}

func (c *programConfirmer) Confirm(ctx context.Context, backup models.BackupEnvelope) (bool, error) {
	reply := make(chan bool, 1)
	c.send(restorePromptMsg{backup: backup, reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
