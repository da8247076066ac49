package dnd

import (
	"strings"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// Resolve turns a drop on board into an Intent. It does not modify board.
func Resolve(board *models.Board, ev DragEnd) Intent {
	if board == nil || ev.OverID == "" || ev.ActiveID == "" {
		return NoOp{}
	}

	if ev.OverID == models.DeleteZoneID {
		if board.IsColumnID(ev.ActiveID) {
			return DeleteColumn{ColumnID: ev.ActiveID}
		}
		if _, ok := board.FindCard(ev.ActiveID); ok {
			return DeleteCard{CardID: ev.ActiveID}
		}
		return NoOp{}
	}

	if board.IsColumnID(ev.ActiveID) {
		return resolveColumn(board, ev)
	}
	return resolveCard(board, ev)
}

func resolveColumn(board *models.Board, ev DragEnd) Intent {
	if ev.ActiveID == ev.OverID {
		return NoOp{}
	}
	from := board.ColumnIndex(ev.ActiveID)
	to := board.ColumnIndex(ev.OverID)
	if from < 0 || to < 0 {
		return NoOp{}
	}
	return ReorderColumns{From: from, To: to}
}

func resolveCard(board *models.Board, ev DragEnd) Intent {
	loc, ok := board.FindCard(ev.ActiveID)
	if !ok {
		return NoOp{}
	}
	source := &board.Columns[loc.ColumnIndex]
	card := source.Cards[loc.CardIndex]

	target := targetColumn(board, ev)
	if target == nil {
		return NoOp{}
	}

	tag := KeepTag()
	if ev.Data != nil {
		if ev.Data.ZoneTagID == nil {
			tag = ClearTag()
		} else {
			tag = SetTag(*ev.Data.ZoneTagID)
		}
	}
	tagChanges := tag.Apply(card.TagID) != card.TagID

	// A specific position is honoured only for drops onto a card that
	// leave the tag alone
	overIndex := -1
	if ev.Data != nil && ev.Data.Type == DropCard && !tagChanges {
		overIndex = target.CardIndex(ev.OverID)
	}

	if target.ID == source.ID {
		index := Unchanged
		if overIndex >= 0 {
			index = overIndex
		}
		if !tagChanges && (index == Unchanged || index == loc.CardIndex) {
			return NoOp{}
		}
		return ReorderCard{CardID: card.ID, ColumnID: source.ID, Index: index, Tag: keepIfSame(tag, tagChanges)}
	}

	index := Append
	if overIndex >= 0 {
		index = overIndex
	}
	return MoveCard{
		CardID:       card.ID,
		FromColumnID: source.ID,
		ToColumnID:   target.ID,
		Index:        index,
		Tag:          keepIfSame(tag, tagChanges),
	}
}

// keepIfSame drops an assignment that would write the value already stored
func keepIfSame(tag TagAssignment, changes bool) TagAssignment {
	if !changes {
		return KeepTag()
	}
	return tag
}

// targetColumn picks the column a card lands in: the payload's column,
// then a column droppable, then a column id, then the column of the card
// under the pointer
func targetColumn(board *models.Board, ev DragEnd) *models.Column {
	if ev.Data != nil && ev.Data.ColumnID != "" {
		return board.Column(ev.Data.ColumnID)
	}
	if id, ok := strings.CutPrefix(ev.OverID, models.ColumnDropPrefix); ok {
		return board.Column(id)
	}
	if col := board.Column(ev.OverID); col != nil {
		return col
	}
	if loc, ok := board.FindCard(ev.OverID); ok {
		return &board.Columns[loc.ColumnIndex]
	}
	return nil
}
