// Package tag holds all cli commands related to tags
// e.g., kanbanned tag ...
package tag

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/styles"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// TagCmd returns the tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// tagResult represents a tag with how many cards use it
type tagResult struct {
	models.Tag
	Cards int `json:"cards"`

	message string
}

func newResult(b *models.Board, tag models.Tag) *tagResult {
	r := &tagResult{Tag: tag}
	for _, col := range b.Columns {
		for _, card := range col.Cards {
			if card.TagID == tag.ID {
				r.Cards++
			}
		}
	}
	return r
}

// GetID implements the GetID interface for quiet mode output
func (r *tagResult) GetID() string {
	return r.ID
}

// Render implements cli.Renderer
func (r *tagResult) Render() string {
	chip := styles.RenderTagChip(&r.Tag)
	detail := styles.SubtitleStyle.Render(fmt.Sprintf("  %s, %d cards  (ID: %s)", r.Color, r.Cards, r.ID))
	if r.message == "" {
		return chip + detail
	}
	return styles.SuccessStyle.Render("✓ ") + r.message + " " + chip + detail
}

// tagListResult represents the tags of one board
type tagListResult struct {
	BoardID string       `json:"board_id"`
	Tags    []*tagResult `json:"tags"`
}

// Render implements cli.Renderer
func (r *tagListResult) Render() string {
	if len(r.Tags) == 0 {
		return "No tags"
	}
	lines := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		lines[i] = t.Render()
	}
	return strings.Join(lines, "\n")
}
