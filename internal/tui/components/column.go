package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/tui/theme"
)

// columnOverhead is the number of lines a column uses around its rows:
// top border, header, top indicator, bottom indicator and bottom border.
const columnOverhead = 5

// ColumnProps describes how one column is drawn
type ColumnProps struct {
	Column *models.Column
	Rows   []Row

	// Selected marks the column holding the cursor
	Selected bool
	// SelectedRow is the cursor row, -1 when the cursor is elsewhere
	SelectedRow int
	// Dropping means a drag is in progress and the cursor row is its target
	Dropping bool
	// DraggingID is the id of the card or column being dragged
	DraggingID string
	// Height is the total height of the column box, 0 for auto
	Height int
}

// RenderColumn renders a complete column with its title, tag zones and cards.
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	○ untagged (n)
//	{Card}
//	● {tag} (n)
//	{Card}
//	▼ (if more rows below)
func RenderColumn(props ColumnProps) string {
	col := props.Column
	content := renderColumnHeader(col, len(col.Cards)) + "\n"

	rendered := make([]string, len(props.Rows))
	heights := make([]int, len(props.Rows))
	for i, row := range props.Rows {
		rendered[i] = renderRow(props, i, row)
		heights[i] = lipgloss.Height(rendered[i])
	}

	avail := 0
	if props.Height > 0 {
		avail = props.Height - columnOverhead
	}
	start, end := VisibleRows(heights, max(props.SelectedRow, 0), avail)

	content += renderScrollIndicator(start > 0, "▲ more above")
	content += strings.Join(rendered[start:end], "\n")
	if len(col.Cards) == 0 {
		content += "\n" + renderEmptyColumnContent()
	}
	if end < len(props.Rows) {
		content += "\n" + IndicatorStyle.Render("▼ more below")
	}

	style := ColumnStyle
	switch {
	case props.DraggingID == col.ID:
		style = style.Faint(true).BorderForeground(lipgloss.Color(theme.Subtle))
	case props.Selected && props.Dropping:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Height sets the content area, borders excluded
		style = style.Height(props.Height - 2).MaxHeight(props.Height)
	}

	return style.Render(content)
}

func renderRow(props ColumnProps, i int, row Row) string {
	atCursor := props.Selected && i == props.SelectedRow
	if row.IsZone() {
		return RenderZoneHeader(row.Zone, atCursor && !props.Dropping, atCursor && props.Dropping)
	}
	return RenderCard(CardProps{
		Card:       row.Card,
		Selected:   atCursor && !props.Dropping,
		DropTarget: atCursor && props.Dropping,
		Dragging:   row.Card.ID == props.DraggingID,
	})
}

func renderColumnHeader(col *models.Column, cardCount int) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Name, cardCount))
}

func renderScrollIndicator(show bool, text string) string {
	if show {
		return IndicatorStyle.Render(text) + "\n"
	}
	return "\n"
}

func renderEmptyColumnContent() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("No cards")
}

// VisibleRows picks the rows [start, end) that fit in avail lines while
// keeping the selected row on screen. An avail of zero or less shows
// everything.
func VisibleRows(heights []int, selected, avail int) (start, end int) {
	if avail <= 0 || len(heights) == 0 {
		return 0, len(heights)
	}
	selected = min(selected, len(heights)-1)

	used := sum(heights[:selected+1])
	for start < selected && used > avail {
		used -= heights[start]
		start++
	}

	end = start
	used = 0
	for end < len(heights) && used+heights[end] <= avail {
		used += heights[end]
		end++
	}
	end = max(end, min(selected+1, len(heights)))
	return start, end
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
