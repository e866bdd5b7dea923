package tui

import "github.com/charmbracelet/bubbles/filepicker"

type pickMode int

const (
	pickImport pickMode = iota
	pickRestore
)

type filePickModel struct {
	picker filepicker.Model
	mode   pickMode
}

func newFilePickModel(mode pickMode) filePickModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".json"}
	fp.CurrentDirectory = "."
	fp.Height = 12
	return filePickModel{picker: fp, mode: mode}
}

func (m filePickModel) title() string {
	if m.mode == pickRestore {
		return "SELECT BACKUP FILE"
	}
	return "SELECT SYNC FILE"
}

func (m filePickModel) View() string {
	return renderPage(m.title(), m.picker.View(), "enter: select │ ↑/↓: navigate │ esc: back")
}
