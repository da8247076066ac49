package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.SuccessFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderTagChip renders a tag as "[name]" with the tag's color
func RenderTagChip(tag *models.Tag) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(tag.Color)).
		Bold(true).
		Render("[" + tag.Name + "]")
}

// RenderCardLine renders one card as "• [tag] Title (priority)  id"
func RenderCardLine(b *models.Board, card models.Card) string {
	var sb strings.Builder
	sb.WriteString("• ")
	if tag := b.ResolveTag(card.TagID); tag != nil {
		sb.WriteString(RenderTagChip(tag))
		sb.WriteString(" ")
	}
	sb.WriteString(ValueStyle.Render(card.Title))
	sb.WriteString(SubtitleStyle.Render(fmt.Sprintf(" (%s)  %s", card.Priority, card.ID)))
	return sb.String()
}

// RenderBoard renders a board as its columns with their cards listed in order
func RenderBoard(b *models.Board) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(b.Title()))
	sb.WriteString(SubtitleStyle.Render("  " + b.ID))
	sb.WriteString("\n")
	for _, col := range b.Columns {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render(col.Name))
		sb.WriteString(SubtitleStyle.Render(fmt.Sprintf(" (%d)  %s", len(col.Cards), col.ID)))
		sb.WriteString("\n")
		for _, card := range col.Cards {
			sb.WriteString("  ")
			sb.WriteString(RenderCardLine(b, card))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
