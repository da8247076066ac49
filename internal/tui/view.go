package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/tui/components"
	"github.com/thenoetrevino/kanbanned/internal/tui/notifications"
	"github.com/thenoetrevino/kanbanned/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}
	if modal := m.modalLayer(); modal != nil {
		layers = append(layers, modal)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBoard renders the tab bar, the visible columns, the status bar and
// the notification footer
func (m Model) viewBoard() string {
	width := m.UiState.Width()
	data := m.boards().Data()
	b := m.currentBoard()

	tabs := make([]string, len(data.Boards))
	for i := range data.Boards {
		tabs[i] = data.Boards[i].Title()
	}
	tabBar := components.RenderTabs(tabs, data.BoardIndex(m.boards().SelectedBoardID()), width)

	var body string
	switch {
	case b == nil:
		body = components.SubtleStyle.Render("No boards. Press " + m.Config.KeyMappings.NewBoard + " to create one.")
	case len(b.Columns) == 0:
		body = components.SubtleStyle.Render("No columns. Press " + m.Config.KeyMappings.AddColumn + " to add one.")
	default:
		body = m.viewColumns()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar,
		body,
		m.viewStatusBar(),
		m.viewFooter(),
	)
}

// viewColumns renders the columns inside the viewport
func (m Model) viewColumns() string {
	b := m.currentBoard()
	offset := m.UiState.ViewportOffset()
	end := min(offset+m.UiState.ViewportSize(), len(b.Columns))
	height := m.UiState.ContentHeight()
	dragging := m.UiState.Mode() == state.DragMode

	rendered := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		col := &b.Columns[i]
		selected := i == m.UiState.SelectedColumn()
		selectedRow := -1
		// a dragged column targets whole columns, not rows
		if selected && !(dragging && m.Tracker.Kind() == dnd.DragColumn) {
			selectedRow = m.UiState.SelectedRow()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:      col,
			Rows:        components.ColumnRows(b, col),
			Selected:    selected,
			SelectedRow: selectedRow,
			Dropping:    dragging && selected,
			DraggingID:  m.Tracker.ActiveID(),
			Height:      height,
		}))
	}

	left, right := " ", " "
	if offset > 0 {
		left = "◀"
	}
	if end < len(b.Columns) {
		right = "▶"
	}
	parts := append([]string{components.IndicatorStyle.Render(left)}, rendered...)
	parts = append(parts, components.IndicatorStyle.Render(right))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// viewStatusBar shows what the keys do in the current mode. While dragging
// it also shows the delete zone.
func (m Model) viewStatusBar() string {
	keys := m.Config.KeyMappings
	width := m.UiState.Width()

	if m.UiState.Mode() != state.DragMode {
		left := "kanbanned"
		if b := m.currentBoard(); b != nil {
			left = fmt.Sprintf("kanbanned · %s · %d cards", b.Title(), b.CardCount())
		}
		return components.RenderStatusBar(components.StatusBarProps{Width: width, Left: left})
	}

	what := m.Tracker.Kind().String()
	name := ""
	if card := m.Tracker.ActiveCard(); card != nil {
		name = card.Title
	} else if col := m.Tracker.ActiveColumn(); col != nil {
		name = col.Name
	}
	status := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  fmt.Sprintf("Moving %s %q", what, name),
		Right: fmt.Sprintf("%s drop · %s cancel", keys.Grab, keys.CancelDrag),
	})
	return lipgloss.JoinVertical(lipgloss.Left, status, components.RenderDeleteZone(what, keys.DropDelete))
}

// viewFooter renders the current notifications on one line each
func (m Model) viewFooter() string {
	if !m.NotificationState.HasAny() {
		return ""
	}
	lines := make([]string, 0, len(m.NotificationState.All()))
	for _, n := range m.NotificationState.All() {
		lines = append(lines, notifications.RenderInlineNotification(n))
	}
	return strings.Join(lines, "\n")
}

// modalLayer returns the dialog drawn over the board for the current mode
func (m Model) modalLayer() *lipgloss.Layer {
	var content string
	switch mode := m.UiState.Mode(); {
	case mode.IsInput():
		content = components.InputBoxStyle.Render(
			components.TitleStyle.Render(m.InputState.Prompt) + "\n\n" +
				m.InputState.View() + "\n\n" +
				components.SubtleStyle.Render("enter save · esc cancel"))
	case mode == state.DeleteColumnConfirmMode:
		col := m.boards().PendingColumnDeletion()
		if col == nil {
			return nil
		}
		title, description := board.ColumnDeletionPrompt(*col)
		content = components.DeleteConfirmBoxStyle.Render(
			components.TitleStyle.Render(title) + "\n\n" +
				description + "\n\n" +
				components.SubtleStyle.Render("[y] delete · [n] cancel"))
	case mode == state.HelpMode:
		content = components.RenderHelp(m.Config.KeyMappings)
	default:
		return nil
	}
	return centeredLayer(content, m.UiState.Width(), m.UiState.Height())
}

// centeredLayer creates a layer positioned at the center of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
