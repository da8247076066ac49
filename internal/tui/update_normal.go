package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanned/internal/tui/state"
)

// updateNormal handles keyboard input in normal mode
func (m Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	keys := m.Config.KeyMappings

	// Footer messages belong to the previous action
	m.NotificationState.Clear()

	if dc, dr, ok := m.navigation(key); ok {
		m.moveCursor(dc, dr)
		return nil
	}

	switch key {
	case keys.Quit:
		return tea.Quit
	case keys.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	case keys.AddCard:
		return m.startAddCard()
	case keys.EditCard:
		return m.startEditCard()
	case keys.DeleteCard:
		m.deleteCard()
	case keys.AddColumn:
		return m.startInput(state.AddColumnMode, "New column name:", "", "")
	case keys.RenameColumn:
		if col := m.currentColumn(); col != nil {
			return m.startInput(state.RenameColumnMode, "Rename column:", col.ID, col.Name)
		}
	case keys.Grab:
		m.grabCard()
	case keys.GrabColumn:
		m.grabColumn()
	case keys.NewBoard:
		m.createBoard()
	case keys.PrevBoard:
		m.switchBoard(-1)
	case keys.NextBoard:
		m.switchBoard(1)
	}
	return nil
}

func (m Model) startAddCard() tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	return m.startInput(state.AddCardMode, fmt.Sprintf("New card in %s:", col.Name), col.ID, "")
}

func (m Model) startEditCard() tea.Cmd {
	card := m.currentCard()
	if card == nil {
		return nil
	}
	return m.startInput(state.EditCardMode, "Card title:", card.ID, card.Title)
}

func (m Model) startInput(mode state.Mode, prompt, target, value string) tea.Cmd {
	m.UiState.SetMode(mode)
	return m.InputState.Start(prompt, target, value)
}

func (m Model) deleteCard() {
	card := m.currentCard()
	if card == nil {
		return
	}
	if err := m.boards().DeleteCard(card.ID); err != nil {
		m.reportError("delete card", err)
		return
	}
	m.clampSelection()
}

func (m Model) createBoard() {
	b, res := m.boards().CreateBoard(m.Ctx)
	m.UiState.ResetSelection()
	if res.Success {
		slog.Info("board created from tui", "board_id", b.ID)
	}
}

// switchBoard selects the board delta places away, wrapping around
func (m Model) switchBoard(delta int) {
	data := m.boards().Data()
	n := len(data.Boards)
	if n < 2 {
		return
	}
	idx := data.BoardIndex(m.boards().SelectedBoardID())
	next := ((idx+delta)%n + n) % n
	if err := m.boards().SelectBoard(data.Boards[next].ID); err != nil {
		m.reportError("switch board", err)
		return
	}
	m.UiState.ResetSelection()
}
