package tui

import (
	"fmt"
	"strings"
	"time"
)

type statusModel struct {
	deviceID string
	lastSync time.Time
	synced   bool
	pending  int
	status   string
}

func (m statusModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Device ID:  %s\n", m.deviceID))
	if m.synced {
		b.WriteString(fmt.Sprintf("Last sync:  %s (%s ago)\n", m.lastSync.Format("2006-01-02 15:04"), humanDuration(time.Since(m.lastSync))))
	} else {
		b.WriteString("Last sync:  never\n")
	}
	b.WriteString(fmt.Sprintf("Pending:    %d queued change(s)\n", m.pending))

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("DEVICE STATUS", strings.TrimRight(b.String(), "\n"), "c: copy device id │ esc: back")
}
