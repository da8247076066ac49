package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// testBoard has an untagged column so card reorders involve no tag change
func testBoard() *models.Board {
	b := models.DefaultBoard()
	b.Columns = append(b.Columns, models.Column{
		ID:   "col-plain",
		Name: "Plain",
		Cards: []models.Card{
			{ID: "p-0", Title: "zero", Priority: models.PriorityLow},
			{ID: "p-1", Title: "one", Priority: models.PriorityLow},
			{ID: "p-2", Title: "two", Priority: models.PriorityLow},
			{ID: "p-3", Title: "three", Priority: models.PriorityLow},
		},
	})
	return &b
}

// ============================================================================
// Resolve
// ============================================================================

func TestResolveDeleteZone(t *testing.T) {
	t.Parallel()
	b := testBoard()

	tests := []struct {
		name   string
		active string
		want   Intent
	}{
		{"column needs confirmation", "col-doing", DeleteColumn{ColumnID: "col-doing"}},
		{"card deletes immediately", "card-4", DeleteCard{CardID: "card-4"}},
		{"unknown id", "ghost", NoOp{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(b, DragEnd{ActiveID: tt.active, OverID: models.DeleteZoneID})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColumns(t *testing.T) {
	t.Parallel()
	b := testBoard()

	tests := []struct {
		name string
		ev   DragEnd
		want Intent
	}{
		{"onto itself", DragEnd{ActiveID: "col-todo", OverID: "col-todo"}, NoOp{}},
		{"forward", DragEnd{ActiveID: "col-todo", OverID: "col-review"}, ReorderColumns{From: 0, To: 2}},
		{"backward", DragEnd{ActiveID: "col-done", OverID: "col-doing"}, ReorderColumns{From: 3, To: 1}},
		{"onto a card", DragEnd{ActiveID: "col-todo", OverID: "card-4"}, NoOp{}},
		{"over nothing", DragEnd{ActiveID: "col-todo"}, NoOp{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(b, tt.ev))
		})
	}
}

func TestResolveSameColumnReorder(t *testing.T) {
	t.Parallel()
	b := testBoard()

	got := Resolve(b, DragEnd{ActiveID: "p-0", OverID: "p-2", Data: CardPayload("col-plain", "")})
	require.Equal(t, ReorderCard{CardID: "p-0", ColumnID: "col-plain", Index: 2, Tag: KeepTag()}, got)

	moved := ArrayMove(b.Columns[4].Cards, 0, 2)
	ids := make([]string, len(moved))
	for i, c := range moved {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"p-1", "p-2", "p-0", "p-3"}, ids)
}

func TestResolveDropOnSelf(t *testing.T) {
	t.Parallel()
	b := testBoard()
	got := Resolve(b, DragEnd{ActiveID: "p-1", OverID: "p-1", Data: CardPayload("col-plain", "")})
	assert.Equal(t, NoOp{}, got)
}

func TestResolveSameColumnWithoutPayload(t *testing.T) {
	t.Parallel()
	b := testBoard()
	// Without a card payload no index is chosen, and nothing else changes
	got := Resolve(b, DragEnd{ActiveID: "p-0", OverID: "p-2"})
	assert.Equal(t, NoOp{}, got)
}

func TestResolveSameColumnRetag(t *testing.T) {
	t.Parallel()
	b := testBoard()

	got := Resolve(b, DragEnd{
		ActiveID: "card-1",
		OverID:   models.ZoneID("col-todo", "tag-feature"),
		Data:     ZonePayload("col-todo", "tag-feature"),
	})
	assert.Equal(t, ReorderCard{CardID: "card-1", ColumnID: "col-todo", Index: Unchanged, Tag: SetTag("tag-feature")}, got)

	// Dropping on a card in another zone retags but keeps the position
	got = Resolve(b, DragEnd{ActiveID: "card-2", OverID: "card-1", Data: CardPayload("col-todo", "tag-bug")})
	assert.Equal(t, ReorderCard{CardID: "card-2", ColumnID: "col-todo", Index: Unchanged, Tag: SetTag("tag-bug")}, got)

	// Same zone as the card already sits in
	got = Resolve(b, DragEnd{
		ActiveID: "card-1",
		OverID:   models.ZoneID("col-todo", "tag-bug"),
		Data:     ZonePayload("col-todo", "tag-bug"),
	})
	assert.Equal(t, NoOp{}, got)
}

func TestResolveCrossColumnZone(t *testing.T) {
	t.Parallel()
	b := testBoard()

	got := Resolve(b, DragEnd{
		ActiveID: "card-1",
		OverID:   models.ZoneID("col-doing", ""),
		Data:     ZonePayload("col-doing", ""),
	})
	assert.Equal(t, MoveCard{
		CardID:       "card-1",
		FromColumnID: "col-todo",
		ToColumnID:   "col-doing",
		Index:        Append,
		Tag:          ClearTag(),
	}, got)
}

func TestResolveCrossColumnTargets(t *testing.T) {
	t.Parallel()
	b := testBoard()

	tests := []struct {
		name string
		ev   DragEnd
		want Intent
	}{
		{
			name: "column droppable",
			ev:   DragEnd{ActiveID: "card-2", OverID: models.ColumnDropID("col-done")},
			want: MoveCard{CardID: "card-2", FromColumnID: "col-todo", ToColumnID: "col-done", Index: Append, Tag: KeepTag()},
		},
		{
			name: "column id",
			ev:   DragEnd{ActiveID: "card-2", OverID: "col-done"},
			want: MoveCard{CardID: "card-2", FromColumnID: "col-todo", ToColumnID: "col-done", Index: Append, Tag: KeepTag()},
		},
		{
			name: "card without payload appends",
			ev:   DragEnd{ActiveID: "card-2", OverID: "card-8"},
			want: MoveCard{CardID: "card-2", FromColumnID: "col-todo", ToColumnID: "col-done", Index: Append, Tag: KeepTag()},
		},
		{
			name: "card payload in same zone inserts before it",
			ev:   DragEnd{ActiveID: "card-2", OverID: "card-8", Data: CardPayload("col-done", "")},
			want: MoveCard{CardID: "card-2", FromColumnID: "col-todo", ToColumnID: "col-done", Index: 1, Tag: KeepTag()},
		},
		{
			name: "card payload in another zone retags and appends",
			ev:   DragEnd{ActiveID: "card-2", OverID: "card-5", Data: CardPayload("col-doing", "tag-bug")},
			want: MoveCard{CardID: "card-2", FromColumnID: "col-todo", ToColumnID: "col-doing", Index: Append, Tag: SetTag("tag-bug")},
		},
		{
			name: "unknown target",
			ev:   DragEnd{ActiveID: "card-2", OverID: "nowhere"},
			want: NoOp{},
		},
		{
			name: "unknown payload column",
			ev:   DragEnd{ActiveID: "card-2", OverID: "zone-x", Data: ZonePayload("col-missing", "")},
			want: NoOp{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(b, tt.ev))
		})
	}
}

func TestResolveDoesNotModifyBoard(t *testing.T) {
	t.Parallel()
	b := testBoard()
	before := b.Clone()
	Resolve(b, DragEnd{ActiveID: "card-1", OverID: "col-done", Data: ZonePayload("col-done", "")})
	assert.Equal(t, before, *b)
}

// ============================================================================
// Tracker
// ============================================================================

func TestTracker(t *testing.T) {
	t.Parallel()
	b := testBoard()
	var tr Tracker

	assert.False(t, tr.Dragging())
	assert.False(t, tr.DragStart(b, "ghost"))
	assert.False(t, tr.Dragging())

	require.True(t, tr.DragStart(b, "col-review"))
	assert.Equal(t, DragColumn, tr.Kind())
	require.NotNil(t, tr.ActiveColumn())
	assert.Equal(t, "In Review", tr.ActiveColumn().Name)
	assert.Nil(t, tr.ActiveCard())

	got := tr.DragEnd(b, DragEnd{OverID: "col-todo"})
	assert.Equal(t, ReorderColumns{From: 2, To: 0}, got)
	assert.False(t, tr.Dragging(), "drag end always returns to idle")

	require.True(t, tr.DragStart(b, "card-5"))
	assert.Equal(t, DragCard, tr.Kind())
	assert.Equal(t, "col-doing", tr.OriginColumnID())
	assert.Equal(t, "card-5", tr.ActiveCard().ID)

	assert.Equal(t, NoOp{}, tr.DragEnd(b, DragEnd{OverID: "nowhere"}))
	assert.False(t, tr.Dragging())
	assert.Nil(t, tr.ActiveCard())

	assert.Equal(t, NoOp{}, tr.DragEnd(b, DragEnd{OverID: "col-todo"}), "drag end while idle")

	tr.DragStart(b, "card-5")
	tr.Cancel()
	assert.False(t, tr.Dragging())
	assert.Equal(t, "none", tr.Kind().String())
}

// ============================================================================
// Messages and helpers
// ============================================================================

func TestTagChangeMessage(t *testing.T) {
	t.Parallel()
	b := testBoard()

	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"unchanged", "tag-bug", "tag-bug", ""},
		{"removed", "tag-bug", "", "Tag 'bug' removed"},
		{"applied", "", "tag-feature", "Tag 'feature' applied"},
		{"changed", "tag-bug", "tag-feature", "Tag changed from 'bug' to 'feature'"},
		{"dangling removed", "tag-gone", "", "Tag removed"},
		{"dangling replaced", "tag-gone", "tag-bug", "Tag 'bug' applied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagChangeMessage(b, tt.from, tt.to))
		})
	}
}

func TestArrayMove(t *testing.T) {
	t.Parallel()
	in := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"forward", 0, 2, []int{1, 2, 0, 3, 4}},
		{"backward", 4, 1, []int{0, 4, 1, 2, 3}},
		{"same", 2, 2, []int{0, 1, 2, 3, 4}},
		{"out of range", 0, 9, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArrayMove(in, tt.from, tt.to))
		})
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, in, "input is not modified")
}

func TestInsert(t *testing.T) {
	t.Parallel()
	in := []string{"a", "b"}
	assert.Equal(t, []string{"x", "a", "b"}, Insert(in, 0, "x"))
	assert.Equal(t, []string{"a", "x", "b"}, Insert(in, 1, "x"))
	assert.Equal(t, []string{"a", "b", "x"}, Insert(in, Append, "x"))
	assert.Equal(t, []string{"a", "b", "x"}, Insert(in, 7, "x"))
	assert.Equal(t, []string{"a", "b"}, in)
}
