package tui

import (
	"fmt"
	"strings"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

// conflictsModel collects one keep-local/use-imported choice per conflict.
// Every choice starts as local, so confirming without touching anything never
// overwrites local data.
type conflictsModel struct {
	conflicts []models.Conflict
	choices   []models.Choice
	idx       int
	reply     chan<- models.Resolution
}

func newConflictsModel(conflicts []models.Conflict, reply chan<- models.Resolution) conflictsModel {
	choices := make([]models.Choice, len(conflicts))
	for i := range choices {
		choices[i] = models.ChoiceLocal
	}
	return conflictsModel{conflicts: conflicts, choices: choices, reply: reply}
}

func (m conflictsModel) answer(proceed bool) {
	if m.reply == nil {
		return
	}
	m.reply <- models.Resolution{Proceed: proceed, Choices: m.choices}
}

func (m conflictsModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%d record(s) changed on both devices. Pick a version for each:\n\n", len(m.conflicts)))

	for i, conflict := range m.conflicts {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, conflict.Description))

		localMark, importedMark := "(•)", "( )"
		if m.choices[i] == models.ChoiceImported {
			localMark, importedMark = "( )", "(•)"
		}
		b.WriteString("     " + localStyle.Render(fmt.Sprintf("%s keep local    %s", localMark, fitText(summarizeRecord(conflict.Local), 48))) + "\n")
		b.WriteString("     " + importedStyle.Render(fmt.Sprintf("%s use imported  %s", importedMark, fitText(summarizeRecord(conflict.Imported), 48))) + "\n")
		b.WriteString("\n")
	}

	return renderPage(
		"RESOLVE CONFLICTS",
		strings.TrimRight(b.String(), "\n"),
		"←/→: pick version │ ↑/↓: navigate │ enter: apply │ esc: cancel import",
	)
}

func summarizeRecord(v any) string {
	switch r := v.(type) {
	case models.Transaction:
		return fmt.Sprintf("%s %s %s %s (%s)", r.Date, r.Type, r.Amount.StringFixed(2), r.Description, r.Category)
	case models.Category:
		return fmt.Sprintf("%s (%s, %s %s)", r.Name, r.Type, r.Color, r.Icon)
	case models.Account:
		return fmt.Sprintf("%s (%s) %s %s", r.Name, r.Type, r.Balance.StringFixed(2), r.Currency)
	default:
		return fmt.Sprintf("%v", v)
	}
}
