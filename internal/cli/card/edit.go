package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// EditCmd returns the card edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <card>",
		Short: "Edit a card's title, description or priority",
		Long: `Edit a card, found by id or case-insensitive title. Only the given
fields change.

Examples:
  kanbanned card edit card-2 --title="Delete node_modules" --priority=high
  kanbanned card edit card-2 --description="$(cat notes.md)"
`,
		RunE: handler.Command(&editHandler{}, parseEditFlags),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (Markdown)")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// editHandler implements handler.Handler for card edits
type editHandler struct{}

// Execute implements the Handler interface
func (h *editHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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
	card := *found

	card.Title = args.GetString("title", card.Title)
	card.Description = args.GetString("description", card.Description)
	if args.Has("priority") {
		if card.Priority, err = handler.NewFlagParser(args.GetCmd()).ParsePriority("priority"); err != nil {
			return nil, err
		}
	}

	svc := args.CLI.Boards()
	if err := svc.EditCard(card); err != nil {
		return nil, fmt.Errorf("card edit error: %w", err)
	}

	r, err := locate(svc.SelectedBoard(), card.ID)
	if err != nil {
		return nil, err
	}
	r.message = fmt.Sprintf("Card '%s' updated", r.Title)
	return r, nil
}

func parseEditFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("priority") {
		return fmt.Errorf("%w: at least one of --title, --description, --priority is required", cli.ErrUsage)
	}
	if flags.Changed("priority") {
		if _, err := handler.NewFlagParser(cmd).ParsePriority("priority"); err != nil {
			return err
		}
	}
	return nil
}
