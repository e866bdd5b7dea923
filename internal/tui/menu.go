package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type menuModel struct {
	items  []string
	idx    int
	notice string
}

func newMenuModel() menuModel {
	return menuModel{
		items: []string{
			"Export sync file",
			"Import sync file",
			"Export full backup",
			"Restore from backup",
			"Device status",
			"Quit",
		},
	}
}

const (
	menuExportSync = iota
	menuImportSync
	menuExportBackup
	menuRestoreBackup
	menuStatus
	menuQuit
)

func (m menuModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2

	if m.notice != "" {
		b.WriteString(warnStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-*s %s\n", idColWidth, fmt.Sprintf("%s %d", cursor, i+1), item))
	}

	return renderPage("PERSONAL FINANCE SYNC", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate")
}
