package tui

import (
	"fmt"
	"strings"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

type resultModel struct {
	title   string
	success bool
	lines   []string
	path    string
	status  string
}

func newExportResultModel(res models.ExportResult) resultModel {
	m := resultModel{title: "EXPORT", success: res.Success, lines: []string{res.Message}}
	if res.Success {
		m.path = res.Filename
		m.lines = append(m.lines, "File: "+res.Filename)
	}
	return m
}

func newImportResultModel(res models.ImportResult) resultModel {
	m := resultModel{title: "IMPORT", success: res.Success, lines: []string{res.Message}}
	if res.Conflicts > 0 {
		m.lines = append(m.lines, fmt.Sprintf("Conflicts detected: %d", res.Conflicts))
	}
	if res.Stats != nil && len(res.Stats.Failed) > 0 {
		for _, failure := range res.Stats.Failed {
			m.lines = append(m.lines, fmt.Sprintf("failed %s %q: %s", failure.Type, failure.ID, failure.Reason))
		}
	}
	return m
}

func newRestoreResultModel(res models.RestoreResult) resultModel {
	m := resultModel{title: "RESTORE", success: res.Success, lines: []string{res.Message}}
	if res.Success {
		m.lines = append(m.lines,
			fmt.Sprintf("Transactions: %d", res.Transactions),
			fmt.Sprintf("Categories:   %d", res.Categories),
			fmt.Sprintf("Accounts:     %d", res.Accounts),
		)
	}
	return m
}

func (m resultModel) View() string {
	var b strings.Builder

	if m.success {
		b.WriteString("OK: ")
	} else {
		b.WriteString(warnStyle.Render("FAILED: "))
	}
	b.WriteString(m.lines[0])
	b.WriteString("\n")
	for _, line := range m.lines[1:] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	hotKeys := "enter/esc: menu"
	if m.path != "" {
		hotKeys = "c: copy path │ " + hotKeys
	}
	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
