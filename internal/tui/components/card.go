package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/tui/theme"
)

// priorityMarks are shown under the card title
var priorityMarks = map[models.Priority]string{
	models.PriorityLow:    "▽ low",
	models.PriorityMedium: "◇ medium",
	models.PriorityHigh:   "▲ high",
}

// CardProps describes how one card is drawn
type CardProps struct {
	Card       *models.Card
	Selected   bool // the cursor is on the card
	DropTarget bool // a drag would land on the card
	Dragging   bool // the card itself is being dragged
}

// RenderCard renders a card as a bordered box with a wrapped title and
// its priority.
func RenderCard(props CardProps) string {
	card := props.Card

	title := wordwrap.String(card.Title, cardContentWidth)
	meta := SubtleStyle.Render(priorityMarks[card.Priority])
	if card.Description != "" {
		meta += SubtleStyle.Render("  ≡")
	}

	style := CardStyle
	switch {
	case props.Dragging:
		style = style.Faint(true).BorderStyle(lipgloss.HiddenBorder())
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, meta))
}
