// Package column holds all cli commands related to columns
// e.g., kanbanned column ...
package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/styles"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// columnResult represents a column after a command changed it
type columnResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Cards    int    `json:"cards"`
	BoardID  string `json:"board_id"`

	message string
}

func newResult(b *models.Board, columnID, message string) *columnResult {
	r := &columnResult{ID: columnID, BoardID: b.ID, Position: b.ColumnIndex(columnID), message: message}
	if col := b.Column(columnID); col != nil {
		r.Name = col.Name
		r.Cards = len(col.Cards)
	}
	return r
}

// GetID implements the GetID interface for quiet mode output
func (r *columnResult) GetID() string {
	return r.ID
}

// Render implements cli.Renderer
func (r *columnResult) Render() string {
	return styles.SuccessStyle.Render("✓ ") + r.message +
		styles.SubtitleStyle.Render(fmt.Sprintf("  (ID: %s)", r.ID))
}
