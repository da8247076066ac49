// Package card holds all cli commands related to cards
// e.g., kanbanned card ...
package card

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/styles"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// cardResult represents a card and where it sits on its board
type cardResult struct {
	models.Card
	ColumnID   string `json:"column_id"`
	ColumnName string `json:"column_name"`
	Position   int    `json:"position"`
	TagName    string `json:"tag_name,omitempty"`
	BoardID    string `json:"board_id"`

	message string
}

// locate builds the result for cardID on b
func locate(b *models.Board, cardID string) (*cardResult, error) {
	loc, ok := b.FindCard(cardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}
	col := b.Columns[loc.ColumnIndex]
	card := col.Cards[loc.CardIndex]

	r := &cardResult{
		Card:       card,
		ColumnID:   col.ID,
		ColumnName: col.Name,
		Position:   loc.CardIndex,
		BoardID:    b.ID,
	}
	if tag := b.ResolveTag(card.TagID); tag != nil {
		r.TagName = tag.Name
	}
	return r, nil
}

// GetID implements the GetID interface for quiet mode output
func (r *cardResult) GetID() string {
	return r.ID
}

// Render implements cli.Renderer
func (r *cardResult) Render() string {
	where := styles.SubtitleStyle.Render(fmt.Sprintf("  (%s #%d, ID: %s)", r.ColumnName, r.Position, r.ID))
	return styles.SuccessStyle.Render("✓ ") + r.message + where
}
