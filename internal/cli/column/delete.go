package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column>",
		Short: "Delete a column and its cards",
		Long: `Delete a column together with every card in it. Asks for
confirmation unless --yes is given; --json and --quiet require --yes.

Examples:
  kanbanned column delete "Done"
  kanbanned column delete col-done --yes --json
`,
		RunE: handler.SimpleCommand(&deleteHandler{}),
	}

	cmd.Flags().Bool("yes", false, "Delete without asking")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for column deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a column"); err != nil {
		return nil, err
	}
	b, err := args.Board()
	if err != nil {
		return nil, err
	}
	col, err := board.FindColumn(b, args.Args[0])
	if err != nil {
		return nil, err
	}

	interactive := !args.Formatter.JSON && !args.Formatter.Quiet
	if !args.GetBool("yes") && !interactive {
		return nil, fmt.Errorf("%w: --yes is required with --json or --quiet", cli.ErrUsage)
	}

	// Dropping the column on the delete zone parks it for confirmation
	if _, err := args.CLI.Drop(dnd.DragEnd{ActiveID: col.ID, OverID: models.DeleteZoneID}); err != nil {
		return nil, err
	}

	svc := args.CLI.Boards()
	pending := svc.PendingColumnDeletion()
	if pending == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, col.ID)
	}
	result := &deleteResult{ID: pending.ID, Name: pending.Name, Cards: len(pending.Cards)}

	if !args.GetBool("yes") {
		title, desc := board.ColumnDeletionPrompt(*pending)
		ok, err := cli.Confirm(title, desc)
		if err != nil {
			svc.CancelColumnDeletion()
			return nil, err
		}
		if !ok {
			svc.CancelColumnDeletion()
			result.Cancelled = true
			return result, nil
		}
	}

	if err := svc.ConfirmColumnDeletion(); err != nil {
		return nil, fmt.Errorf("column delete error: %w", err)
	}
	result.Deleted = true
	return result, nil
}

// deleteResult represents the outcome of a column deletion
type deleteResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cards     int    `json:"cards"`
	Deleted   bool   `json:"deleted"`
	Cancelled bool   `json:"cancelled"`
}

// GetID implements the GetID interface for quiet mode output
func (r *deleteResult) GetID() string {
	return r.ID
}

// Render implements cli.Renderer
func (r *deleteResult) Render() string {
	if r.Cancelled {
		return "Deletion cancelled"
	}
	return fmt.Sprintf("✓ Column '%s' deleted (%d cards removed)", r.Name, r.Cards)
}
