package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanbanned/internal/config"
)

// RenderHelp renders the key binding reference for the given mappings
func RenderHelp(keys config.KeyMappings) string {
	sections := []struct {
		title string
		binds [][2]string
	}{
		{"Navigation", [][2]string{
			{keys.PrevColumn + "/" + keys.NextColumn, "previous / next column"},
			{keys.PrevCard + "/" + keys.NextCard, "previous / next row"},
			{keys.PrevBoard + "/" + keys.NextBoard, "previous / next board"},
		}},
		{"Cards", [][2]string{
			{keys.AddCard, "add card ([tag] title creates a tag)"},
			{keys.EditCard, "retitle card"},
			{keys.DeleteCard, "delete card"},
		}},
		{"Dragging", [][2]string{
			{keys.Grab, "pick up card / drop it"},
			{keys.GrabColumn, "pick up column"},
			{keys.DropDelete, "drop on the delete zone"},
			{keys.CancelDrag, "cancel drag"},
		}},
		{"Columns & boards", [][2]string{
			{keys.AddColumn, "add column"},
			{keys.RenameColumn, "rename column"},
			{keys.NewBoard, "new board"},
		}},
		{"Other", [][2]string{
			{keys.ShowHelp, "toggle help"},
			{keys.Quit, "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	for _, section := range sections {
		b.WriteString("\n\n" + TitleStyle.Render(section.title))
		for _, bind := range section.binds {
			fmt.Fprintf(&b, "\n  %-8s %s", bind[0], SubtleStyle.Render(bind[1]))
		}
	}
	return HelpBoxStyle.Render(b.String())
}
