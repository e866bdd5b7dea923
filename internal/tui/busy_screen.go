package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
)

type busyModel struct {
	spinner spinner.Model
	label   string
}

func newBusyModel() busyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return busyModel{spinner: s}
}

func (m busyModel) View() string {
	return renderPage("WORKING", m.spinner.View()+" "+m.label, "")
}
