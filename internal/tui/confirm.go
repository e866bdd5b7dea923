package tui

import (
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

type restoreConfirmModel struct {
	backup models.BackupEnvelope
	reply  chan<- bool
}

func (m restoreConfirmModel) answer(ok bool) {
	if m.reply == nil {
		return
	}
	m.reply <- ok
}

func (m restoreConfirmModel) View() string {
	content := fmt.Sprintf("Restore backup from %s (device %s)?\n", m.backup.Timestamp, fitText(m.backup.DeviceID, 12))
	content += fmt.Sprintf("%d transactions, %d categories, %d accounts\n\n",
		len(m.backup.Data.Transactions), len(m.backup.Data.Categories), len(m.backup.Data.Accounts))
	content += warnStyle.Render("This will replace ALL local data.") + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
