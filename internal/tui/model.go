package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanned/internal/app"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/notify"
	"github.com/thenoetrevino/kanbanned/internal/tui/components"
	"github.com/thenoetrevino/kanbanned/internal/tui/state"
)

// notificationPollInterval is how often saves finished in the background
// are checked for feedback
const notificationPollInterval = 500 * time.Millisecond

// notificationTickMsg asks the model to pick up queued notifications
type notificationTickMsg struct{}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	InputState        *state.InputState
	NotificationState *state.NotificationState

	// Tracker follows the keyboard drag in progress
	Tracker *dnd.Tracker
}

// InitialModel creates the TUI model over an opened application
func InitialModel(ctx context.Context, application *app.App) Model {
	cfg := application.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		NotificationState: state.NewNotificationState(),
		Tracker:           &dnd.Tracker{},
	}
	m.collectNotifications()
	return m
}

// Init starts polling for notifications
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return pollNotifications()
}

func pollNotifications() tea.Cmd {
	return tea.Tick(notificationPollInterval, func(time.Time) tea.Msg {
		return notificationTickMsg{}
	})
}

// boards returns the board service
func (m Model) boards() *board.Service {
	return m.App.Boards
}

// currentBoard returns the selected board, or nil
func (m Model) currentBoard() *models.Board {
	return m.boards().SelectedBoard()
}

// currentColumn returns the column under the cursor, or nil
func (m Model) currentColumn() *models.Column {
	b := m.currentBoard()
	if b == nil || len(b.Columns) == 0 {
		return nil
	}
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(b.Columns) {
		return nil
	}
	return &b.Columns[idx]
}

// currentRows returns the rows of the column under the cursor
func (m Model) currentRows() []components.Row {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	return components.ColumnRows(m.currentBoard(), col)
}

// currentRow returns the row under the cursor
func (m Model) currentRow() (components.Row, bool) {
	rows := m.currentRows()
	idx := m.UiState.SelectedRow()
	if idx < 0 || idx >= len(rows) {
		return components.Row{}, false
	}
	return rows[idx], true
}

// currentCard returns the card under the cursor, or nil when the cursor is
// on a zone header
func (m Model) currentCard() *models.Card {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	return row.Card
}

// clampSelection keeps the cursor on an existing column and row
func (m Model) clampSelection() {
	b := m.currentBoard()
	if b == nil {
		m.UiState.ClampSelection(0, 0)
		return
	}
	m.UiState.ClampSelection(len(b.Columns), len(m.currentRows()))
}

// selectCard moves the cursor onto cardID wherever it now lives
func (m Model) selectCard(cardID string) {
	b := m.currentBoard()
	if b == nil {
		return
	}
	loc, ok := b.FindCard(cardID)
	if !ok {
		return
	}
	col := &b.Columns[loc.ColumnIndex]
	m.UiState.SetSelectedColumn(loc.ColumnIndex)
	m.UiState.SetSelectedRow(components.RowOfCard(components.ColumnRows(b, col), cardID))
	m.clampSelection()
}

// selectColumn moves the cursor onto the header of columnID
func (m Model) selectColumn(columnID string) {
	b := m.currentBoard()
	if b == nil {
		return
	}
	if idx := b.ColumnIndex(columnID); idx >= 0 {
		m.UiState.SetSelectedColumn(idx)
		m.UiState.SetSelectedRow(0)
	}
	m.clampSelection()
}

// collectNotifications moves queued messages into the footer
func (m Model) collectNotifications() {
	if pending := m.App.Notifications.Drain(); len(pending) > 0 {
		m.NotificationState.Add(pending...)
	}
}

// reportError shows err in the footer and logs it
func (m Model) reportError(action string, err error) {
	slog.Error("tui action failed", "action", action, "error", err)
	m.NotificationState.Add(notify.Notification{Level: notify.Error, Message: err.Error()})
}
