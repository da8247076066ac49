package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanned/internal/notify"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.foreground)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderNotification renders a banner for n
func RenderNotification(n notify.Notification) string {
	return Render(FromLevel(n.Level), n.Message)
}

// RenderInline renders a compact single-line notification (for the footer)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineNotification renders n on a single line
func RenderInlineNotification(n notify.Notification) string {
	return RenderInline(FromLevel(n.Level), n.Message)
}
