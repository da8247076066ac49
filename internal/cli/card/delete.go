package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <card>",
		Short: "Delete a card",
		Long: `Delete a card, found by id or case-insensitive title. Cards are
deleted without confirmation.

Examples:
  kanbanned card delete card-7
`,
		RunE: handler.SimpleCommand(&deleteHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for card deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a card"); err != nil {
		return nil, err
	}
	b, err := args.Board()
	if err != nil {
		return nil, err
	}
	found, err := board.FindCard(b, args.Args[0])
	if err != nil {
		return nil, err
	}
	r, err := locate(b, found.ID)
	if err != nil {
		return nil, err
	}

	if _, err := args.CLI.Drop(dnd.DragEnd{ActiveID: r.ID, OverID: models.DeleteZoneID}); err != nil {
		return nil, fmt.Errorf("card delete error: %w", err)
	}

	r.message = fmt.Sprintf("Card '%s' deleted from %s", r.Title, r.ColumnName)
	return r, nil
}
