package state

import (
	"testing"

	"github.com/thenoetrevino/kanbanned/internal/notify"
)

func TestViewportSize(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{30, 1},
		{84, 2},
		{200, 4},
	}

	for _, tt := range tests {
		s := NewUIState()
		s.SetWidth(tt.width)
		if got := s.ViewportSize(); got != tt.want {
			t.Errorf("ViewportSize() at width %d = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestClampSelection(t *testing.T) {
	s := NewUIState()
	s.SetWidth(84) // two columns visible
	s.SetSelectedColumn(7)
	s.SetSelectedRow(9)

	s.ClampSelection(4, 3)

	if s.SelectedColumn() != 3 {
		t.Errorf("SelectedColumn() = %d, want 3", s.SelectedColumn())
	}
	if s.SelectedRow() != 2 {
		t.Errorf("SelectedRow() = %d, want 2", s.SelectedRow())
	}
	if s.ViewportOffset() != 2 {
		t.Errorf("ViewportOffset() = %d, want 2", s.ViewportOffset())
	}
}

func TestClampSelection_NoColumns(t *testing.T) {
	s := NewUIState()
	s.SetSelectedColumn(2)
	s.SetSelectedRow(1)

	s.ClampSelection(0, 0)

	if s.SelectedColumn() != 0 || s.SelectedRow() != 0 || s.ViewportOffset() != 0 {
		t.Errorf("selection after clamp = (%d, %d, %d), want zeros",
			s.SelectedColumn(), s.SelectedRow(), s.ViewportOffset())
	}
}

func TestEnsureSelectionVisible(t *testing.T) {
	s := NewUIState()
	s.SetWidth(84)

	s.EnsureSelectionVisible(3)
	if s.ViewportOffset() != 2 {
		t.Errorf("ViewportOffset() after selecting 3 = %d, want 2", s.ViewportOffset())
	}

	s.EnsureSelectionVisible(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset() after selecting 0 = %d, want 0", s.ViewportOffset())
	}
}

func TestModeIsInput(t *testing.T) {
	inputs := map[Mode]bool{
		NormalMode:              false,
		DragMode:                false,
		AddCardMode:             true,
		EditCardMode:            true,
		AddColumnMode:           true,
		RenameColumnMode:        true,
		DeleteColumnConfirmMode: false,
		HelpMode:                false,
	}
	for mode, want := range inputs {
		if got := mode.IsInput(); got != want {
			t.Errorf("Mode(%d).IsInput() = %v, want %v", mode, got, want)
		}
	}
}

func TestInputState_StartAndClear(t *testing.T) {
	s := NewInputState()
	s.Start("Rename column:", "col-todo", "To Do")

	if s.Value() != "To Do" {
		t.Errorf("Value() = %q, want %q", s.Value(), "To Do")
	}
	if s.Target != "col-todo" {
		t.Errorf("Target = %q, want col-todo", s.Target)
	}

	s.Clear()
	if s.Value() != "" || s.Prompt != "" || s.Target != "" {
		t.Errorf("Clear() left value=%q prompt=%q target=%q", s.Value(), s.Prompt, s.Target)
	}
}

func TestNotificationState_KeepsNewest(t *testing.T) {
	s := NewNotificationState()
	for _, msg := range []string{"one", "two", "three", "four"} {
		s.Add(notify.Notification{Level: notify.Info, Message: msg})
	}

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(all))
	}
	if all[0].Message != "two" || all[2].Message != "four" {
		t.Errorf("All() = %v, want two..four", all)
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() after Clear() = true, want false")
	}
}
