package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanned/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled, initiate graceful shutdown
	if m.Ctx != nil {
		select {
		case <-m.Ctx.Done():
			return m, tea.Quit
		default:
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.clampSelection()
		return m, nil

	case notificationTickMsg:
		m.collectNotifications()
		return m, pollNotifications()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd := m.handleKey(msg)
		m.collectNotifications()
		return m, cmd
	}

	// Let the text input see everything else (cursor blink and the like)
	if m.UiState.Mode().IsInput() {
		return m, m.InputState.Update(msg)
	}
	return m, nil
}

// handleKey routes a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch mode := m.UiState.Mode(); {
	case mode == state.NormalMode:
		return m.updateNormal(msg)
	case mode == state.DragMode:
		return m.updateDrag(msg)
	case mode == state.DeleteColumnConfirmMode:
		return m.updateDeleteColumnConfirm(msg)
	case mode == state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return nil
	case mode.IsInput():
		return m.updateInput(msg)
	}
	return nil
}

// moveCursor moves the cursor by dc columns and dr rows. Changing column
// puts the cursor on the first row.
func (m Model) moveCursor(dc, dr int) {
	if dc != 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + dc)
		m.UiState.SetSelectedRow(0)
	}
	if dr != 0 {
		m.UiState.SetSelectedRow(m.UiState.SelectedRow() + dr)
	}
	m.clampSelection()
}

// navigation maps a key to a cursor movement
func (m Model) navigation(key string) (dc, dr int, ok bool) {
	keys := m.Config.KeyMappings
	switch key {
	case keys.PrevColumn, "left":
		return -1, 0, true
	case keys.NextColumn, "right":
		return 1, 0, true
	case keys.PrevCard, "up":
		return 0, -1, true
	case keys.NextCard, "down":
		return 0, 1, true
	}
	return 0, 0, false
}
