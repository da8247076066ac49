package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/tui/state"
)

// grabCard picks up the card under the cursor
func (m Model) grabCard() {
	card := m.currentCard()
	if card == nil {
		return
	}
	if m.Tracker.DragStart(m.currentBoard(), card.ID) {
		m.UiState.SetMode(state.DragMode)
	}
}

// grabColumn picks up the column under the cursor
func (m Model) grabColumn() {
	col := m.currentColumn()
	if col == nil {
		return
	}
	if m.Tracker.DragStart(m.currentBoard(), col.ID) {
		m.UiState.SetMode(state.DragMode)
	}
}

// updateDrag handles keyboard input while something is picked up. The
// cursor is the drop target.
func (m Model) updateDrag(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	keys := m.Config.KeyMappings

	if dc, dr, ok := m.navigation(key); ok {
		if m.Tracker.Kind() == dnd.DragColumn {
			dr = 0
		}
		m.moveCursor(dc, dr)
		return nil
	}

	switch key {
	case keys.CancelDrag:
		m.Tracker.Cancel()
		m.UiState.SetMode(state.NormalMode)
	case keys.Grab, "enter":
		m.drop(m.dropTarget())
	case keys.DropDelete:
		m.drop(dnd.DragEnd{OverID: models.DeleteZoneID})
	}
	return nil
}

// dropTarget describes the drop target under the cursor. Columns land on
// columns; cards land on a zone header or on a card, each carrying the
// zone it belongs to.
func (m Model) dropTarget() dnd.DragEnd {
	col := m.currentColumn()
	if col == nil {
		return dnd.DragEnd{}
	}
	if m.Tracker.Kind() == dnd.DragColumn {
		return dnd.DragEnd{OverID: col.ID}
	}

	row, ok := m.currentRow()
	if !ok {
		return dnd.DragEnd{OverID: models.ColumnDropID(col.ID)}
	}
	if row.IsZone() {
		return dnd.DragEnd{OverID: row.Zone.ID, Data: dnd.ZonePayload(col.ID, row.Zone.TagID())}
	}
	return dnd.DragEnd{OverID: row.Card.ID, Data: dnd.CardPayload(col.ID, row.Zone.TagID())}
}

// drop ends the drag at ev and applies the result. A column dropped on
// the delete zone waits for confirmation.
func (m Model) drop(ev dnd.DragEnd) {
	kind := m.Tracker.Kind()
	activeID := m.Tracker.ActiveID()
	intent := m.Tracker.DragEnd(m.currentBoard(), ev)
	m.UiState.SetMode(state.NormalMode)

	slog.Debug("drop resolved", "kind", kind.String(), "active_id", activeID, "over_id", ev.OverID, "intent", intentName(intent))

	if err := m.boards().Apply(intent); err != nil {
		m.reportError("drop", err)
		return
	}

	switch intent.(type) {
	case dnd.DeleteColumn:
		m.UiState.SetMode(state.DeleteColumnConfirmMode)
	case dnd.DeleteCard:
		m.clampSelection()
	case dnd.ReorderColumns:
		m.selectColumn(activeID)
	case dnd.ReorderCard, dnd.MoveCard:
		m.selectCard(activeID)
	default:
		if kind == dnd.DragCard {
			m.selectCard(activeID)
		}
	}
}

// updateDeleteColumnConfirm handles the y/n prompt of a column deletion
func (m Model) updateDeleteColumnConfirm(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		if err := m.boards().ConfirmColumnDeletion(); err != nil {
			m.reportError("delete column", err)
		}
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
	case "n", "N", "esc":
		m.boards().CancelColumnDeletion()
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

func intentName(intent dnd.Intent) string {
	switch intent.(type) {
	case dnd.NoOp:
		return "noop"
	case dnd.DeleteColumn:
		return "delete_column"
	case dnd.DeleteCard:
		return "delete_card"
	case dnd.ReorderColumns:
		return "reorder_columns"
	case dnd.ReorderCard:
		return "reorder_card"
	case dnd.MoveCard:
		return "move_card"
	default:
		return "unknown"
	}
}
