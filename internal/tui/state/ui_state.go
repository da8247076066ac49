package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	DragMode                            // A card or column is picked up
	AddCardMode                         // Typing the title of a new card
	EditCardMode                        // Retitling the selected card
	AddColumnMode                       // Naming a new column
	RenameColumnMode                    // Renaming the selected column
	DeleteColumnConfirmMode             // Confirming a column dropped on the delete zone
	HelpMode                            // Displaying help screen
)

// IsInput reports whether the mode reads a line of text
func (m Mode) IsInput() bool {
	switch m {
	case AddCardMode, EditCardMode, AddColumnMode, RenameColumnMode:
		return true
	default:
		return false
	}
}

// UIState manages the user interface state.
// This includes navigation (column/row selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedRow is the index of the selected row (zone header or card)
	// within the selected column
	selectedRow int

	width  int
	height int
	mode   Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // recalculated when width is set
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedRow returns the index of the selected row.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// SetSelectedRow updates the selected row index.
func (s *UIState) SetSelectedRow(index int) {
	s.selectedRow = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus tab bar, status bar and footer, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3
	const statusBarHeight = 2
	const footerHeight = 2
	return max(s.height-tabBarHeight-statusBarHeight-footerHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// ColumnWidth is the full width of one rendered column: 34 content,
// 2 padding, 2 border and 2 spacing.
const ColumnWidth = 40

// calculateViewportSize calculates how many columns can fit in the terminal width.
// Four characters are reserved for margins and scroll indicators, and at
// least one column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const reservedWidth = 4
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// ClampSelection keeps the selection inside a board with columnsLen
// columns whose selected column has rowsLen rows, and keeps it visible.
func (s *UIState) ClampSelection(columnsLen, rowsLen int) {
	if columnsLen == 0 {
		s.selectedColumn = 0
		s.selectedRow = 0
		s.viewportOffset = 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)
	s.selectedRow = min(max(s.selectedRow, 0), max(rowsLen-1, 0))

	s.EnsureSelectionVisible(s.selectedColumn)
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected column is visible.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetSelection resets column and row selection to zero.
// This is called when switching boards.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedRow = 0
	s.viewportOffset = 0
}
