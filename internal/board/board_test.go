package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/notify"
	"github.com/thenoetrevino/kanbanned/internal/persistence"
	"github.com/thenoetrevino/kanbanned/internal/schema"
)

// ============================================================================
// Helpers
// ============================================================================

// seqIDs hands out <prefix>-<n> ids in order
func seqIDs() persistence.IDGenerator {
	n := 0
	return persistence.IDGeneratorFunc(func(prefix string) string {
		n++
		return fmt.Sprintf("%s-gen%d", prefix, n)
	})
}

// recordingPersister remembers every save instead of writing anything
type recordingPersister struct {
	immediate []models.AppData
	debounced []models.AppData
	result    persistence.SaveResult
	callbacks []func(persistence.SaveResult)
}

func newRecorder() *recordingPersister {
	return &recordingPersister{result: persistence.SaveResult{Success: true}}
}

func (r *recordingPersister) Save(_ context.Context, data models.AppData) persistence.SaveResult {
	r.immediate = append(r.immediate, data)
	return r.result
}

func (r *recordingPersister) SaveDebounced(data models.AppData, onComplete func(persistence.SaveResult)) {
	r.debounced = append(r.debounced, data)
	r.callbacks = append(r.callbacks, onComplete)
}

// complete runs the last debounce callback as if its timer had fired
func (r *recordingPersister) complete() {
	if len(r.callbacks) == 0 {
		return
	}
	if cb := r.callbacks[len(r.callbacks)-1]; cb != nil {
		cb(r.result)
	}
}

func newTestService(t *testing.T) (*Service, *recordingPersister, *notify.Queue) {
	t.Helper()
	rec := newRecorder()
	q := notify.NewQueue()
	svc := NewService(models.DefaultAppData(), rec,
		WithIDs(seqIDs()),
		WithSink(q),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return svc, rec, q
}

func cardIDs(col *models.Column) []string {
	ids := make([]string, len(col.Cards))
	for i, c := range col.Cards {
		ids[i] = c.ID
	}
	return ids
}

// ============================================================================
// Pure mutations
// ============================================================================

func TestMutationsLeaveInputUntouched(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	before := data.Clone()
	id := data.Boards[0].ID

	_, _ = RenameBoard(data, id, "renamed")
	_, _ = DeleteColumn(data, id, "col-todo")
	_, _ = DeleteCard(data, id, "card-1")
	_, _, _ = AddCard(data, id, "col-todo", "[x] y", seqIDs())
	_, _ = MoveCard(data, id, dnd.MoveCard{CardID: "card-1", FromColumnID: "col-todo", ToColumnID: "col-done", Index: dnd.Append, Tag: dnd.ClearTag()})
	_, _ = DeleteTag(data, id, "tag-bug")

	assert.Equal(t, before, data)
}

func TestBoardFields(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()

	next, err := RenameBoard(data, "default-board", "Work")
	require.NoError(t, err)
	assert.Equal(t, "Work", next.Boards[0].Name)

	next, err = SetBoardEmoji(next, "default-board", "🚀")
	require.NoError(t, err)
	assert.Equal(t, "🚀 Work", next.Boards[0].Title())

	_, err = RenameBoard(data, "missing", "x")
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestCreateBoardFreshIDs(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	next, b := CreateBoard(data, persistence.RandomIDs)

	require.Len(t, next.Boards, 2)
	assert.Equal(t, models.NewBoardName, b.Name)
	assert.Equal(t, b, next.Boards[1])

	template := models.DefaultBoard()
	seen := map[string]bool{template.ID: true}
	for _, col := range template.Columns {
		seen[col.ID] = true
		for _, c := range col.Cards {
			seen[c.ID] = true
		}
	}

	assert.False(t, seen[b.ID])
	require.Len(t, b.Columns, len(template.Columns))
	for i, col := range b.Columns {
		assert.False(t, seen[col.ID], "column id reused: %s", col.ID)
		seen[col.ID] = true
		assert.Equal(t, template.Columns[i].Name, col.Name)
		for _, c := range col.Cards {
			assert.False(t, seen[c.ID], "card id reused: %s", c.ID)
			seen[c.ID] = true
		}
	}
}

func TestColumns(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	id := "default-board"

	next, col, err := AddColumn(data, id, seqIDs())
	require.NoError(t, err)
	assert.Equal(t, models.Column{ID: "col-gen1", Name: "New Column", Cards: []models.Card{}}, col)
	assert.Len(t, next.Boards[0].Columns, 5)

	next, err = RenameColumn(next, id, col.ID, "Blocked")
	require.NoError(t, err)
	assert.Equal(t, "Blocked", next.Boards[0].Columns[4].Name)

	next, err = MoveColumn(next, id, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "col-gen1", next.Boards[0].Columns[0].ID)

	_, err = MoveColumn(next, id, 0, 9)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)

	next, err = DeleteColumn(next, id, "col-todo")
	require.NoError(t, err)
	assert.Nil(t, next.Boards[0].Column("col-todo"))
	assert.Len(t, next.Boards[0].Tags, 2, "column deletion keeps tags")

	_, err = RenameColumn(next, id, "col-todo", "x")
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
}

func TestParseInlineTag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		raw       string
		wantTag   string
		wantTitle string
	}{
		{"shorthand", "[bug] Fix login", "bug", "Fix login"},
		{"no space", "[bug]Fix login", "bug", "Fix login"},
		{"plain title", "Fix login", "", "Fix login"},
		{"empty brackets", "[] Fix login", "", "[] Fix login"},
		{"multiline title", "[bug] first\nsecond", "bug", "first\nsecond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag, title := ParseInlineTag(tt.raw)
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, tt.wantTitle, title)
		})
	}
}

func TestAddCardInlineTag(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	ids := seqIDs()

	next, card, err := AddCard(data, "default-board", "col-todo", "[urgent] Fix the thing", ids)
	require.NoError(t, err)
	b := next.Boards[0]
	require.Len(t, b.Tags, 3)
	tag := b.Tags[2]
	assert.Equal(t, "urgent", tag.Name)
	assert.Equal(t, models.PaletteColor(2), tag.Color)
	assert.Equal(t, "Fix the thing", card.Title)
	assert.Equal(t, tag.ID, card.TagID)
	assert.Equal(t, models.PriorityLow, card.Priority)
	assert.Empty(t, card.Description)

	next, card, err = AddCard(next, "default-board", "col-doing", "[URGENT] Another", ids)
	require.NoError(t, err)
	assert.Len(t, next.Boards[0].Tags, 3, "tag matched case-insensitively")
	assert.Equal(t, tag.ID, card.TagID)
	assert.Equal(t, "Another", card.Title)
}

func TestAddCardVariants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		raw       string
		wantErr   error
		wantTitle string
		wantTag   string
	}{
		{name: "plain", raw: "  Write docs ", wantTitle: "Write docs"},
		{name: "existing tag", raw: "[ Bug ]  Crash", wantTitle: "Crash", wantTag: "tag-bug"},
		{name: "blank", raw: "   ", wantErr: ErrEmptyTitle},
		{name: "tag only", raw: "[bug]   ", wantErr: ErrEmptyTitle},
		{name: "empty brackets", raw: "[] title", wantTitle: "[] title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := models.DefaultAppData()
			next, card, err := AddCard(data, "default-board", "col-todo", tt.raw, seqIDs())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, data, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, card.Title)
			assert.Equal(t, tt.wantTag, card.TagID)
			assert.Len(t, next.Boards[0].Tags, 2)
		})
	}
}

func TestEditCard(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()

	next, err := EditCard(data, "default-board", models.Card{ID: "card-4", Title: "  ", Priority: "urgent", Description: "d"})
	require.NoError(t, err)
	got := next.Boards[0].Card("card-4")
	assert.Equal(t, models.Card{ID: "card-4", Title: "Untitled", Priority: models.PriorityMedium, Description: "d"}, *got)

	_, err = EditCard(data, "default-board", models.Card{ID: "nope", Title: "x"})
	assert.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestCardMoves(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	id := "default-board"

	next, err := ReorderCard(data, id, dnd.ReorderCard{CardID: "card-1", ColumnID: "col-todo", Index: 2, Tag: dnd.KeepTag()})
	require.NoError(t, err)
	assert.Equal(t, []string{"card-2", "card-3", "card-1"}, cardIDs(next.Boards[0].Column("col-todo")))

	next, err = ReorderCard(next, id, dnd.ReorderCard{CardID: "card-1", ColumnID: "col-todo", Index: dnd.Unchanged, Tag: dnd.SetTag("tag-feature")})
	require.NoError(t, err)
	assert.Equal(t, "tag-feature", next.Boards[0].Card("card-1").TagID)
	assert.Equal(t, []string{"card-2", "card-3", "card-1"}, cardIDs(next.Boards[0].Column("col-todo")))

	next, err = MoveCard(next, id, dnd.MoveCard{CardID: "card-2", FromColumnID: "col-todo", ToColumnID: "col-done", Index: 0, Tag: dnd.KeepTag()})
	require.NoError(t, err)
	assert.Equal(t, []string{"card-2", "card-7", "card-8"}, cardIDs(next.Boards[0].Column("col-done")))
	assert.Equal(t, []string{"card-3", "card-1"}, cardIDs(next.Boards[0].Column("col-todo")))

	next, err = DeleteCard(next, id, "card-2")
	require.NoError(t, err)
	assert.Nil(t, next.Boards[0].Card("card-2"))

	_, err = DeleteCard(next, id, "card-2")
	assert.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestTags(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	id := "default-board"

	next, tag, created, err := CreateTag(data, id, "Bug", seqIDs())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "tag-bug", tag.ID)
	assert.Equal(t, data, next)

	next, tag, created, err = CreateTag(data, id, "docs", seqIDs())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.Tag{ID: "tag-gen1", Name: "docs", Color: models.PaletteColor(2)}, tag)
	assert.Len(t, next.Boards[0].Tags, 3)

	_, _, _, err = CreateTag(data, id, "  ", seqIDs())
	assert.ErrorIs(t, err, ErrEmptyTagName)

	color := "#000000"
	next, err = UpdateTag(next, id, "tag-gen1", TagPatch{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, models.Tag{ID: "tag-gen1", Name: "docs", Color: color}, *next.Boards[0].Tag("tag-gen1"))

	next, err = DeleteTag(next, id, "tag-bug")
	require.NoError(t, err)
	assert.Nil(t, next.Boards[0].Tag("tag-bug"))
	assert.Equal(t, "tag-bug", next.Boards[0].Card("card-1").TagID, "cards keep dangling ids")
	assert.Nil(t, next.Boards[0].ResolveTag("tag-bug"))

	_, err = UpdateTag(next, id, "tag-bug", TagPatch{Color: &color})
	assert.ErrorIs(t, err, models.ErrTagNotFound)
}

func TestApplyIntentUnknown(t *testing.T) {
	t.Parallel()
	_, err := ApplyIntent(models.DefaultAppData(), "default-board", nil)
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

// ============================================================================
// Service
// ============================================================================

func TestServiceCommitsAndSaves(t *testing.T) {
	t.Parallel()
	svc, rec, _ := newTestService(t)

	require.NoError(t, svc.RenameBoard("Work"))
	require.Len(t, rec.debounced, 1)
	assert.Equal(t, "Work", rec.debounced[0].Boards[0].Name)
	assert.Equal(t, "Work", svc.SelectedBoard().Name)

	_, err := svc.AddCard("col-todo", "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Len(t, rec.debounced, 1, "no-op mutations do not save")

	assert.ErrorIs(t, svc.DeleteCard("ghost"), models.ErrCardNotFound)
	assert.Len(t, rec.debounced, 1)
}

func TestServiceInlineTagShorthand(t *testing.T) {
	t.Parallel()
	svc, rec, _ := newTestService(t)

	first, err := svc.AddCard("col-todo", "[urgent] Fix the thing")
	require.NoError(t, err)
	second, err := svc.AddCard("col-todo", "[URGENT] Another")
	require.NoError(t, err)

	b := svc.SelectedBoard()
	assert.Len(t, b.Tags, 3)
	assert.Equal(t, first.TagID, second.TagID)
	assert.Equal(t, "urgent", b.Tag(first.TagID).Name)
	assert.Len(t, rec.debounced, 2)
}

func TestServiceCreateBoard(t *testing.T) {
	t.Parallel()
	svc, rec, q := newTestService(t)

	b, res := svc.CreateBoard(context.Background())
	assert.True(t, res.Success)
	assert.Equal(t, b.ID, svc.SelectedBoardID())
	require.Len(t, rec.immediate, 1, "board creation saves immediately")
	assert.Empty(t, rec.debounced)
	assert.Len(t, rec.immediate[0].Boards, 2)
	assert.False(t, q.HasAny())

	require.NoError(t, svc.SelectBoard("default-board"))
	assert.ErrorIs(t, svc.SelectBoard("nope"), models.ErrBoardNotFound)
}

func TestServiceCrossColumnZoneDrop(t *testing.T) {
	t.Parallel()
	svc, _, q := newTestService(t)
	b := svc.SelectedBoard()

	intent := dnd.Resolve(b, dnd.DragEnd{
		ActiveID: "card-1",
		OverID:   models.ZoneID("col-doing", ""),
		Data:     dnd.ZonePayload("col-doing", ""),
	})
	require.NoError(t, svc.Apply(intent))

	b = svc.SelectedBoard()
	doing := b.Column("col-doing")
	assert.Equal(t, []string{"card-4", "card-5", "card-1"}, cardIDs(doing))
	assert.Empty(t, b.Card("card-1").TagID)

	zones := models.Zones(b, doing)
	assert.Equal(t, "card-1", zones[0].Cards[len(zones[0].Cards)-1].ID, "card lands in the untagged zone")

	assert.Equal(t, []notify.Notification{{Level: notify.Info, Message: "Tag 'bug' removed"}}, q.All())
}

func TestServiceMoveWithoutTagChangeIsSilent(t *testing.T) {
	t.Parallel()
	svc, rec, q := newTestService(t)

	intent := dnd.Resolve(svc.SelectedBoard(), dnd.DragEnd{ActiveID: "card-2", OverID: models.ColumnDropID("col-done")})
	require.NoError(t, svc.Apply(intent))
	assert.False(t, q.HasAny())
	assert.Len(t, rec.debounced, 1)

	require.NoError(t, svc.Apply(dnd.NoOp{}))
	assert.Len(t, rec.debounced, 1)
}

func TestServicePendingColumnDeletion(t *testing.T) {
	t.Parallel()
	svc, rec, _ := newTestService(t)

	intent := dnd.Resolve(svc.SelectedBoard(), dnd.DragEnd{ActiveID: "col-doing", OverID: models.DeleteZoneID})
	require.NoError(t, svc.Apply(intent))

	pending := svc.PendingColumnDeletion()
	require.NotNil(t, pending)
	assert.Equal(t, "col-doing", pending.ID)
	assert.NotNil(t, svc.SelectedBoard().Column("col-doing"), "not deleted before confirmation")
	assert.Empty(t, rec.debounced)

	svc.CancelColumnDeletion()
	assert.Nil(t, svc.PendingColumnDeletion())
	assert.ErrorIs(t, svc.ConfirmColumnDeletion(), ErrNoPendingDeletion)

	require.NoError(t, svc.Apply(intent))
	require.NoError(t, svc.ConfirmColumnDeletion())
	assert.Nil(t, svc.SelectedBoard().Column("col-doing"))
	assert.Len(t, rec.debounced, 1)
	assert.Nil(t, svc.PendingColumnDeletion())
}

func TestServiceDeleteCardIntentIsImmediate(t *testing.T) {
	t.Parallel()
	svc, rec, _ := newTestService(t)
	require.NoError(t, svc.Apply(dnd.DeleteCard{CardID: "card-7"}))
	assert.Nil(t, svc.SelectedBoard().Card("card-7"))
	assert.Len(t, rec.debounced, 1)
}

func TestServiceSaveFailureNotifies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		kind persistence.SaveErrorKind
		want string
	}{
		{"quota", persistence.ErrorQuotaExceeded, MsgStorageFull},
		{"unknown", persistence.ErrorUnknown, MsgSaveFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rec, q := newTestService(t)
			rec.result = persistence.SaveResult{Success: false, Error: tt.kind}

			require.NoError(t, svc.RenameColumn("col-todo", "Backlog"))
			assert.False(t, q.HasAny(), "nothing reported before the save runs")
			rec.complete()
			assert.Equal(t, []notify.Notification{{Level: notify.Error, Message: tt.want}}, q.All())
		})
	}
}

func TestServiceCreateTagIdempotent(t *testing.T) {
	t.Parallel()
	svc, rec, _ := newTestService(t)

	tag, err := svc.CreateTag("Feature")
	require.NoError(t, err)
	assert.Equal(t, "tag-feature", tag.ID)
	assert.Empty(t, rec.debounced)

	tag, err = svc.CreateTag("docs")
	require.NoError(t, err)
	assert.Equal(t, "tag-gen1", tag.ID)
	assert.Len(t, rec.debounced, 1)
}

func TestServiceNoBoard(t *testing.T) {
	t.Parallel()
	svc := NewService(models.AppData{Version: 1}, newRecorder())
	assert.Nil(t, svc.SelectedBoard())
	assert.ErrorIs(t, svc.RenameBoard("x"), ErrNoBoardSelected)
	assert.ErrorIs(t, svc.Apply(dnd.NoOp{}), ErrNoBoardSelected)
}

// ============================================================================
// Feedback
// ============================================================================

func TestLoadFeedback(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		res  schema.LoadResult
		want []notify.Notification
	}{
		{name: "clean", res: schema.LoadResult{}},
		{
			name: "reset",
			res:  schema.LoadResult{UsedDefaults: true},
			want: []notify.Notification{{Level: notify.Error, Message: MsgLoadFailed}},
		},
		{
			name: "discards and repairs",
			res: schema.LoadResult{
				Discarded: schema.Counts{Columns: 1, Cards: 2},
				Recovered: schema.Counts{Cards: 1},
			},
			want: []notify.Notification{
				{Level: notify.Error, Message: "Removed 1 column, 2 cards that could not be read."},
				{Level: notify.Warning, Message: "Fixed 1 card with missing data."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoadFeedback(tt.res))
		})
	}
}

func TestColumnDeletionPrompt(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()
	b := &data.Boards[0]

	title, desc := ColumnDeletionPrompt(*b.Column("col-review"))
	assert.Equal(t, `Delete "In Review"?`, title)
	assert.Equal(t, "This will permanently delete this column and 1 card.", desc)

	_, desc = ColumnDeletionPrompt(*b.Column("col-todo"))
	assert.Equal(t, "This will permanently delete this column and 3 cards.", desc)

	_, desc = ColumnDeletionPrompt(models.Column{Name: "Empty"})
	assert.Equal(t, "This will permanently delete this empty column.", desc)
}

func TestFindHelpers(t *testing.T) {
	t.Parallel()
	data := models.DefaultAppData()

	b, err := FindBoard(data, "KANBANNED.com")
	require.NoError(t, err)
	assert.Equal(t, "default-board", b.ID)
	_, err = FindBoard(data, "nope")
	assert.ErrorIs(t, err, models.ErrBoardNotFound)

	col, err := FindColumn(b, "doing")
	require.NoError(t, err)
	assert.Equal(t, "col-doing", col.ID)

	tag, err := FindTag(b, "tag-feature")
	require.NoError(t, err)
	assert.Equal(t, "feature", tag.Name)
	_, err = FindTag(b, "none")
	assert.ErrorIs(t, err, models.ErrTagNotFound)

	card, err := FindCard(b, "card-5")
	require.NoError(t, err)
	assert.Equal(t, "Googling how to exit Vim", card.Title)
	card, err = FindCard(b, "read the documentation")
	require.NoError(t, err)
	assert.Equal(t, "card-3", card.ID)
	_, err = FindCard(b, "missing")
	assert.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestFindCard_AmbiguousTitle(t *testing.T) {
	t.Parallel()
	b := &models.Board{Columns: []models.Column{
		{ID: "a", Cards: []models.Card{{ID: "x", Title: "Same"}}},
		{ID: "b", Cards: []models.Card{{ID: "y", Title: "same"}}},
	}}

	_, err := FindCard(b, "same")
	require.ErrorIs(t, err, models.ErrCardNotFound)
	assert.Contains(t, err.Error(), "use the id")

	card, err := FindCard(b, "y")
	require.NoError(t, err)
	assert.Equal(t, "y", card.ID)
}
