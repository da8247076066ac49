package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/tui/theme"
)

// untaggedZoneName labels the zone of cards without a tag
const untaggedZoneName = "untagged"

// RenderZoneHeader renders the header line of a tag zone.
//
// Layout:
//
//	● bug (2)
//	○ untagged (1)  ◀ drop here
func RenderZoneHeader(zone models.Zone, selected, dropTarget bool) string {
	icon, name, color := "○", untaggedZoneName, theme.Subtle
	if zone.Tag != nil {
		icon, name, color = "●", zone.Tag.Name, zone.Tag.Color
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if selected {
		style = style.Bold(true).Underline(true)
	}

	header := style.Render(fmt.Sprintf("%s %s", icon, name)) +
		SubtleStyle.Render(fmt.Sprintf(" (%d)", len(zone.Cards)))

	if dropTarget {
		header += lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DropTarget)).
			Render("  ◀ drop here")
	}
	return header
}
