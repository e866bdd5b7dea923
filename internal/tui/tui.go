package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the whole interactive session and blocks until the user quits.
// The conflict resolver and restore confirmer are bridged into the running
// bubbletea program, so a background import pipeline can suspend on a user
// decision without the UI freezing.
func (t *TUI) Run(ctx context.Context) error {
	resolver := &programResolver{send: t.Send}
	confirmer := &programConfirmer{send: t.Send}

	model := newAppModel(ctx, t.services, resolver, confirmer)
	p := tea.NewProgram(model, tea.WithAltScreen())

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	finalModel, err := p.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// NotifySyncOverdue surfaces a reminder banner on the main menu. Shaped to
// plug straight into the reminder job's notify callback.
func (t *TUI) NotifySyncOverdue(elapsed time.Duration) {
	t.Send(reminderMsg{elapsed: elapsed})
}

// Send forwards a message into the running program. Messages sent while no
// program is running are dropped; callers like the reminder job fire
// periodically and lose nothing by missing a beat.
func (t *TUI) Send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}
