// Package board holds all cli commands related to boards
// e.g., kanbanned board ...
package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/styles"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(EmojiCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// boardSummary is the listing form of a board
type boardSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji,omitempty"`
	Columns int    `json:"columns"`
	Cards   int    `json:"cards"`
	Tags    int    `json:"tags"`
}

func summarize(b *models.Board) boardSummary {
	return boardSummary{
		ID:      b.ID,
		Name:    b.Name,
		Emoji:   b.Emoji,
		Columns: len(b.Columns),
		Cards:   b.CardCount(),
		Tags:    len(b.Tags),
	}
}

// GetID implements the GetID interface for quiet mode output
func (s boardSummary) GetID() string {
	return s.ID
}

// Render implements cli.Renderer
func (s boardSummary) Render() string {
	title := s.Name
	if s.Emoji != "" {
		title = s.Emoji + " " + s.Name
	}
	return fmt.Sprintf("%s %s",
		styles.TitleStyle.Render(title),
		styles.SubtitleStyle.Render(fmt.Sprintf("(%d columns, %d cards, %d tags)  %s", s.Columns, s.Cards, s.Tags, s.ID)),
	)
}

// boardListResult represents the result of board list
type boardListResult struct {
	Boards []boardSummary `json:"boards"`
}

// Render implements cli.Renderer
func (r *boardListResult) Render() string {
	if len(r.Boards) == 0 {
		return "No boards"
	}
	lines := make([]string, len(r.Boards))
	for i, b := range r.Boards {
		lines[i] = b.Render()
	}
	return strings.Join(lines, "\n")
}

// boardResult wraps a board with its human-readable rendering
type boardResult struct {
	models.Board
	message string
}

// GetID implements the GetID interface for quiet mode output
func (r *boardResult) GetID() string {
	return r.ID
}

// Render implements cli.Renderer
func (r *boardResult) Render() string {
	if r.message != "" {
		return styles.SuccessStyle.Render("✓ ") + r.message
	}
	return styles.RenderBoard(&r.Board)
}
