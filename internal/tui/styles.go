package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	localStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	importedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
