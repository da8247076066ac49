package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename a board",
		Long: `Rename the selected board. A blank name falls back to "Untitled Board".

Examples:
  kanbanned board rename "Roadmap" --board="kanbanned.com"
`,
		RunE: handler.SimpleCommand(&renameHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// renameHandler implements handler.Handler for board renames
type renameHandler struct{}

// Execute implements the Handler interface
func (h *renameHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a new board name"); err != nil {
		return nil, err
	}
	if _, err := args.Board(); err != nil {
		return nil, err
	}

	svc := args.CLI.Boards()
	if err := svc.RenameBoard(args.Args[0]); err != nil {
		return nil, fmt.Errorf("board rename error: %w", err)
	}

	b := *svc.SelectedBoard()
	return &boardResult{
		Board:   b,
		message: fmt.Sprintf("Board renamed to '%s'", b.Name),
	}, nil
}
