package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <column> <title>",
		Short: "Add a card to a column",
		Long: `Add a card to the end of a column. A title of the form "[tag] title"
applies that tag, creating it when the board has no tag of that name.

Examples:
  # Add an untagged card
  kanbanned card add "To Do" "Write release notes"

  # Inline tag shorthand
  kanbanned card add "To Do" "[urgent] Fix login"

  # Quiet mode for bash capture
  CARD_ID=$(kanbanned card add col-todo "Ship it" --priority=high --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	cmd.Flags().String("description", "", "Card description (Markdown)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high (default: low)")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for adding cards
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 2, "a column and a title"); err != nil {
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

	svc := args.CLI.Boards()
	card, err := svc.AddCard(col.ID, args.Args[1])
	if err != nil {
		return nil, fmt.Errorf("card add error: %w", err)
	}

	if args.Has("description") || args.Has("priority") {
		parser := handler.NewFlagParser(args.GetCmd())
		if args.Has("priority") {
			if card.Priority, err = parser.ParsePriority("priority"); err != nil {
				return nil, err
			}
		}
		card.Description = args.GetString("description", card.Description)
		if err := svc.EditCard(card); err != nil {
			return nil, fmt.Errorf("card edit error: %w", err)
		}
	}

	r, err := locate(svc.SelectedBoard(), card.ID)
	if err != nil {
		return nil, err
	}
	r.message = fmt.Sprintf("Card '%s' added", r.Title)
	return r, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("priority") {
		return nil
	}
	_, err := handler.NewFlagParser(cmd).ParsePriority("priority")
	return err
}
