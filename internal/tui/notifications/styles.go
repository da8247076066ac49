package notifications

import "github.com/thenoetrevino/kanbanned/internal/tui/theme"

type style struct {
	icon       string
	title      string
	foreground string
}

func (s Severity) style() style {
	switch s {
	case Success:
		return style{icon: "✓", title: "Done", foreground: theme.SuccessFg}
	case Warning:
		return style{icon: "⚠", title: "Warning", foreground: theme.WarningFg}
	case Error:
		return style{icon: "✕", title: "Error", foreground: theme.ErrorFg}
	default:
		return style{icon: "🔔", title: "Info", foreground: theme.InfoFg}
	}
}
