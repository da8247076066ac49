package dnd

import "github.com/thenoetrevino/kanbanned/internal/models"

// DragKind is what is being dragged
type DragKind int

const (
	// DragNone means no gesture is in progress
	DragNone DragKind = iota
	// DragColumn means a column is being dragged
	DragColumn
	// DragCard means a card is being dragged
	DragCard
)

// String returns a readable name for logs
func (k DragKind) String() string {
	switch k {
	case DragColumn:
		return "column"
	case DragCard:
		return "card"
	default:
		return "none"
	}
}

// Tracker follows one gesture at a time: Idle until DragStart, Dragging
// until DragEnd or Cancel.
type Tracker struct {
	kind         DragKind
	activeID     string
	originColumn string
	card         *models.Card
	column       *models.Column
}

// DragStart classifies id as a column or card of board and enters the
// dragging state. It returns false, staying idle, when id is neither.
func (t *Tracker) DragStart(board *models.Board, id string) bool {
	t.reset()
	if board == nil {
		return false
	}
	if col := board.Column(id); col != nil {
		c := col.Clone()
		t.kind = DragColumn
		t.activeID = id
		t.column = &c
		t.originColumn = id
		return true
	}
	if loc, ok := board.FindCard(id); ok {
		col := &board.Columns[loc.ColumnIndex]
		card := col.Cards[loc.CardIndex]
		t.kind = DragCard
		t.activeID = id
		t.card = &card
		t.originColumn = col.ID
		return true
	}
	return false
}

// DragEnd leaves the dragging state and resolves the drop. The tracker is
// idle afterwards whatever the outcome.
func (t *Tracker) DragEnd(board *models.Board, ev DragEnd) Intent {
	active := t.activeID
	t.reset()
	if active == "" {
		return NoOp{}
	}
	ev.ActiveID = active
	return Resolve(board, ev)
}

// Cancel abandons the gesture
func (t *Tracker) Cancel() {
	t.reset()
}

// Dragging reports whether a gesture is in progress
func (t *Tracker) Dragging() bool {
	return t.kind != DragNone
}

// Kind returns what is being dragged
func (t *Tracker) Kind() DragKind {
	return t.kind
}

// ActiveID returns the id of the dragged element
func (t *Tracker) ActiveID() string {
	return t.activeID
}

// OriginColumnID returns the column the gesture started in. For a column
// drag it is the column itself.
func (t *Tracker) OriginColumnID() string {
	return t.originColumn
}

// ActiveCard returns a snapshot of the dragged card for overlays, or nil
func (t *Tracker) ActiveCard() *models.Card {
	return t.card
}

// ActiveColumn returns a snapshot of the dragged column for overlays, or nil
func (t *Tracker) ActiveColumn() *models.Column {
	return t.column
}

func (t *Tracker) reset() {
	*t = Tracker{}
}
