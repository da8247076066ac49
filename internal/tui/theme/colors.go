package theme

import "github.com/thenoetrevino/kanbanned/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	ColumnBorder   string
	CardBorder     string
	SelectedBorder string
	DropTarget     string
	Delete         string
	SuccessFg      string
	InfoFg         string
	WarningFg      string
	ErrorFg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	SelectedBorder = colors.SelectedBorder
	DropTarget = colors.DropTarget
	Delete = colors.Delete
	SuccessFg = colors.SuccessFg
	InfoFg = colors.InfoFg
	WarningFg = colors.WarningFg
	ErrorFg = colors.ErrorFg
}
