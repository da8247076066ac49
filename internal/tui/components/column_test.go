package components

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

func TestColumnRows_ZonesThenCards(t *testing.T) {
	b := models.DefaultBoard()
	rows := ColumnRows(&b, &b.Columns[0])

	// untagged(card-2), bug(card-1), feature(card-3)
	want := []struct {
		zoneTag string
		cardID  string
	}{
		{"", ""},
		{"", "card-2"},
		{"tag-bug", ""},
		{"tag-bug", "card-1"},
		{"tag-feature", ""},
		{"tag-feature", "card-3"},
	}

	if len(rows) != len(want) {
		t.Fatalf("len(ColumnRows()) = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if got := rows[i].Zone.TagID(); got != w.zoneTag {
			t.Errorf("rows[%d].Zone.TagID() = %q, want %q", i, got, w.zoneTag)
		}
		gotCard := ""
		if rows[i].Card != nil {
			gotCard = rows[i].Card.ID
		}
		if gotCard != w.cardID {
			t.Errorf("rows[%d] card = %q, want %q", i, gotCard, w.cardID)
		}
	}
}

func TestRowOfCard(t *testing.T) {
	b := models.DefaultBoard()
	rows := ColumnRows(&b, &b.Columns[0])

	if got := RowOfCard(rows, "card-3"); got != 5 {
		t.Errorf("RowOfCard(card-3) = %d, want 5", got)
	}
	if got := RowOfCard(rows, "card-99"); got != -1 {
		t.Errorf("RowOfCard(card-99) = %d, want -1", got)
	}
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name      string
		column    *models.Column
		cardCount int
		wantText  string
	}{
		{"empty column", &models.Column{Name: "Backlog"}, 0, "Backlog (0)"},
		{"single card", &models.Column{Name: "Doing"}, 1, "Doing (1)"},
		{"multiple cards", &models.Column{Name: "Done"}, 42, "Done (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderColumnHeader(tt.column, tt.cardCount)
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("renderColumnHeader() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	if got := renderScrollIndicator(false, "▲ more above"); got != "\n" {
		t.Errorf("renderScrollIndicator(false, ...) = %q, want single newline", got)
	}

	got := renderScrollIndicator(true, "▲ more above")
	if !strings.Contains(got, "more above") || !strings.HasSuffix(got, "\n") {
		t.Errorf("renderScrollIndicator(true, ...) = %q", got)
	}
}

func TestRenderColumn_ShowsZonesAndCards(t *testing.T) {
	b := models.DefaultBoard()
	col := &b.Columns[1]

	out := RenderColumn(ColumnProps{Column: col, Rows: ColumnRows(&b, col), SelectedRow: -1})

	for _, want := range []string{"Doing (2)", "untagged", "bug", "feature", "Googling how to exit Vim"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderColumn() missing %q", want)
		}
	}
}

func TestRenderColumn_EmptyColumn(t *testing.T) {
	b := models.DefaultBoard()
	col := &models.Column{ID: "col-new", Name: "New Column"}

	out := RenderColumn(ColumnProps{Column: col, Rows: ColumnRows(&b, col), SelectedRow: -1})
	if !strings.Contains(out, "No cards") {
		t.Errorf("RenderColumn() on empty column should say No cards, got %q", out)
	}
}

func TestRenderColumn_DropTargetMarksZone(t *testing.T) {
	b := models.DefaultBoard()
	col := &b.Columns[0]
	rows := ColumnRows(&b, col)

	out := RenderColumn(ColumnProps{Column: col, Rows: rows, Selected: true, SelectedRow: 2, Dropping: true})
	if !strings.Contains(out, "drop here") {
		t.Errorf("RenderColumn() with a drop target zone should show the drop marker")
	}
}

func TestVisibleRows(t *testing.T) {
	tests := []struct {
		name      string
		heights   []int
		selected  int
		avail     int
		wantStart int
		wantEnd   int
	}{
		{"unbounded", []int{1, 4, 4}, 0, 0, 0, 3},
		{"all fit", []int{1, 4, 4}, 2, 20, 0, 3},
		{"top window", []int{1, 4, 4, 1, 4}, 0, 6, 0, 2},
		{"scrolled to selection", []int{1, 4, 4, 1, 4}, 4, 6, 3, 5},
		{"selection taller than window", []int{1, 4, 4}, 1, 2, 1, 2},
		{"empty", nil, 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleRows(tt.heights, tt.selected, tt.avail)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRows() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
