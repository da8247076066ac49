package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// maxInputLength bounds titles and names typed in the TUI
const maxInputLength = 100

// InputState manages the single-line text input used for card titles and
// column names.
type InputState struct {
	// Prompt is the text displayed above the input (e.g., "New column name:")
	Prompt string

	// Target is the id of the column or card the input applies to
	Target string

	input textinput.Model
}

// NewInputState creates a new InputState with an empty input.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = maxInputLength
	return &InputState{input: ti}
}

// Start resets the input to value and focuses it
func (s *InputState) Start(prompt, target, value string) tea.Cmd {
	s.Prompt = prompt
	s.Target = target
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Update forwards a message to the text input
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the text typed so far
func (s *InputState) Value() string {
	return s.input.Value()
}

// View renders the text input
func (s *InputState) View() string {
	return s.input.View()
}

// Clear empties the input and forgets the prompt and target.
func (s *InputState) Clear() {
	s.Prompt = ""
	s.Target = ""
	s.input.SetValue("")
	s.input.Blur()
}
