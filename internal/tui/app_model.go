package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gil100/Personal-Finance--sub001/internal/service"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type screen int

const (
	screenMenu screen = iota
	screenFilePick
	screenBusy
	screenConflicts
	screenStatus
	screenResult
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	resolver  service.ConflictResolver
	confirmer service.RestoreConfirmer

	currentScreen screen
	menu          menuModel
	filePick      filePickModel
	busy          busyModel
	conflicts     conflictsModel
	statusScreen  statusModel
	result        resultModel

	showConfirm bool
	confirm     restoreConfirmModel

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.Services, resolver service.ConflictResolver, confirmer service.RestoreConfirmer) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		resolver:      resolver,
		confirmer:     confirmer,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		busy:          newBusyModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The restore confirmation overlay takes all input while visible.
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirm.answer(true)
				m.showConfirm = false
				m.busy.label = "Restoring backup..."
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.confirm.answer(false)
				m.showConfirm = false
			}
			return m, nil
		}
	case conflictsPromptMsg:
		m.conflicts = newConflictsModel(msg.conflicts, msg.reply)
		m.currentScreen = screenConflicts
		return m, nil
	case restorePromptMsg:
		m.showConfirm = true
		m.confirm = restoreConfirmModel{backup: msg.backup, reply: msg.reply}
		return m, nil
	case exportDoneMsg:
		m.result = newExportResultModel(msg.result)
		m.currentScreen = screenResult
		if msg.result.Success {
			m.menu.notice = ""
		}
		return m, nil
	case importDoneMsg:
		m.result = newImportResultModel(msg.result)
		m.currentScreen = screenResult
		return m, nil
	case restoreDoneMsg:
		m.result = newRestoreResultModel(msg.result)
		m.currentScreen = screenResult
		return m, nil
	case statusLoadedMsg:
		if msg.err != nil {
			m.result = resultModel{title: "DEVICE STATUS", lines: []string{msg.err.Error()}}
			m.currentScreen = screenResult
			return m, nil
		}
		m.statusScreen = statusModel{
			deviceID: msg.deviceID,
			lastSync: msg.lastSync,
			synced:   msg.synced,
			pending:  msg.pending,
		}
		m.currentScreen = screenStatus
		return m, nil
	case reminderMsg:
		m.menu.notice = fmt.Sprintf("Last sync export was %s ago. Consider exporting a fresh sync file.", humanDuration(msg.elapsed))
		return m, nil
	case copiedMsg:
		m.result.status = "Copied!"
		m.statusScreen.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.result.status = ""
		m.statusScreen.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenFilePick:
		return m.updateFilePick(msg)
	case screenBusy:
		return m.updateBusy(msg)
	case screenConflicts:
		return m.updateConflicts(msg)
	case screenStatus:
		return m.updateStatus(msg)
	case screenResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View()
	case screenFilePick:
		body = m.filePick.View()
	case screenBusy:
		body = m.busy.View()
	case screenConflicts:
		body = m.conflicts.View()
	case screenStatus:
		body = m.statusScreen.View()
	case screenResult:
		body = m.result.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case menuExportSync:
			m.busy.label = "Exporting sync file..."
			m.currentScreen = screenBusy
			return m, tea.Batch(m.busy.spinner.Tick, m.cmdExportSync())
		case menuImportSync:
			m.filePick = newFilePickModel(pickImport)
			m.currentScreen = screenFilePick
			return m, m.filePick.picker.Init()
		case menuExportBackup:
			m.busy.label = "Exporting full backup..."
			m.currentScreen = screenBusy
			return m, tea.Batch(m.busy.spinner.Tick, m.cmdExportBackup())
		case menuRestoreBackup:
			m.filePick = newFilePickModel(pickRestore)
			m.currentScreen = screenFilePick
			return m, m.filePick.picker.Init()
		case menuStatus:
			m.busy.label = "Loading device status..."
			m.currentScreen = screenBusy
			return m, tea.Batch(m.busy.spinner.Tick, m.cmdLoadStatus())
		case menuQuit:
			m.quitByUser = true
			return m, tea.Quit
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenMenu
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filePick.picker, cmd = m.filePick.picker.Update(msg)

	if selected, path := m.filePick.picker.DidSelectFile(msg); selected {
		switch m.filePick.mode {
		case pickImport:
			m.busy.label = "Importing sync file..."
			m.currentScreen = screenBusy
			return m, tea.Batch(m.busy.spinner.Tick, m.cmdImport(path))
		case pickRestore:
			m.busy.label = "Reading backup file..."
			m.currentScreen = screenBusy
			return m, tea.Batch(m.busy.spinner.Tick, m.cmdRestore(path))
		}
	}

	return m, cmd
}

func (m appModel) updateBusy(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, nil
	}

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.busy.spinner, cmd = m.busy.spinner.Update(tick)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateConflicts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.conflicts.idx > 0 {
			m.conflicts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.conflicts.idx < len(m.conflicts.conflicts)-1 {
			m.conflicts.idx++
		}
	case key.Matches(keyMsg, keys.left):
		m.conflicts.choices[m.conflicts.idx] = models.ChoiceLocal
	case key.Matches(keyMsg, keys.right):
		m.conflicts.choices[m.conflicts.idx] = models.ChoiceImported
	case key.Matches(keyMsg, keys.toggle):
		if m.conflicts.choices[m.conflicts.idx] == models.ChoiceLocal {
			m.conflicts.choices[m.conflicts.idx] = models.ChoiceImported
		} else {
			m.conflicts.choices[m.conflicts.idx] = models.ChoiceLocal
		}
	case key.Matches(keyMsg, keys.enter):
		m.conflicts.answer(true)
		m.busy.label = "Merging data..."
		m.currentScreen = screenBusy
		return m, m.busy.spinner.Tick
	case key.Matches(keyMsg, keys.esc):
		m.conflicts.answer(false)
		m.busy.label = "Cancelling import..."
		m.currentScreen = screenBusy
		return m, m.busy.spinner.Tick
	}

	return m, nil
}

func (m appModel) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.statusScreen.deviceID)
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.copy):
		if m.result.path != "" {
			return m, cmdCopyToClipboard(m.result.path)
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdExportSync() tea.Cmd {
	ctx := m.ctx
	export := m.services.Export
	queue := m.services.SyncQueue
	return func() tea.Msg {
		result := export.ExportForSync(ctx)
		if result.Success {
			// A fresh sync file covers everything recorded so far.
			_ = queue.Drain(ctx)
		}
		return exportDoneMsg{result: result}
	}
}

func (m appModel) cmdExportBackup() tea.Cmd {
	ctx := m.ctx
	export := m.services.Export
	return func() tea.Msg {
		return exportDoneMsg{result: export.ExportFullBackup(ctx)}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	importer := m.services.Import
	resolver := m.resolver
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{result: models.ImportResult{
				Message: "could not open the selected file",
				Err:     err,
			}}
		}
		defer f.Close()

		return importDoneMsg{result: importer.ImportSyncData(ctx, f, resolver)}
	}
}

func (m appModel) cmdRestore(path string) tea.Cmd {
	ctx := m.ctx
	restore := m.services.Restore
	confirmer := m.confirmer
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return restoreDoneMsg{result: models.RestoreResult{
				Message: "could not open the selected file",
				Err:     err,
			}}
		}
		defer f.Close()

		return restoreDoneMsg{result: restore.RestoreBackup(ctx, f, confirmer)}
	}
}

func (m appModel) cmdLoadStatus() tea.Cmd {
	ctx := m.ctx
	device := m.services.Device
	queue := m.services.SyncQueue
	return func() tea.Msg {
		deviceID, err := device.GetOrCreateDeviceID(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}

		msg := statusLoadedMsg{deviceID: deviceID}
		lastSync, err := device.LastSyncTime(ctx)
		switch {
		case err == nil:
			msg.lastSync = lastSync
			msg.synced = true
		case errors.Is(err, store.ErrNotFound):
		default:
			return statusLoadedMsg{err: err}
		}

		pending, err := queue.Pending(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}
		msg.pending = len(pending)

		return msg
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
