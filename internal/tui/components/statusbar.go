package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds the text of both sides of the status bar
type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text.
// An empty Right defaults to the help hint.
func RenderStatusBar(props StatusBarProps) string {
	right := props.Right
	if right == "" {
		right = "press ? for help"
	}

	leftRendered := SubtleStyle.Render(props.Left)
	rightRendered := SubtleStyle.Render(right)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}

// RenderDeleteZone renders the drop target that deletes what lands on it.
// It is drawn only while something is being dragged.
func RenderDeleteZone(kind string, key string) string {
	return DeleteZoneStyle.Render("🗑  drop " + kind + " here to delete  (" + key + ")")
}
