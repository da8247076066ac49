package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanned/internal/tui/state"
)

// updateInput handles keyboard input while a title or name is being typed
func (m Model) updateInput(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.finishInput()
		return nil
	case "enter":
		m.submitInput()
		m.finishInput()
		return nil
	}
	return m.InputState.Update(msg)
}

func (m Model) finishInput() {
	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)
	m.clampSelection()
}

// submitInput applies the typed value according to the current mode
func (m Model) submitInput() {
	value := m.InputState.Value()
	target := m.InputState.Target
	svc := m.boards()

	switch m.UiState.Mode() {
	case state.AddCardMode:
		card, err := svc.AddCard(target, value)
		if err != nil {
			m.reportError("add card", err)
			return
		}
		m.selectCard(card.ID)

	case state.EditCardMode:
		b := m.currentBoard()
		if b == nil {
			return
		}
		card := b.Card(target)
		if card == nil {
			return
		}
		edited := *card
		edited.Title = strings.TrimSpace(value)
		if err := svc.EditCard(edited); err != nil {
			m.reportError("edit card", err)
		}

	case state.AddColumnMode:
		col, err := svc.AddColumn()
		if err != nil {
			m.reportError("add column", err)
			return
		}
		if name := strings.TrimSpace(value); name != "" {
			if err := svc.RenameColumn(col.ID, name); err != nil {
				m.reportError("rename column", err)
			}
		}
		m.selectColumn(col.ID)

	case state.RenameColumnMode:
		name := strings.TrimSpace(value)
		if name == "" {
			return
		}
		if err := svc.RenameColumn(target, name); err != nil {
			m.reportError("rename column", err)
		}
	}
}
