package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/app"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board from the starter template. The board is saved
immediately.

Examples:
  # Create board (human-readable output)
  kanbanned board create --name="Side Project"

  # Quiet mode for bash capture
  BOARD_ID=$(kanbanned board create --quiet)
`,
		RunE: handler.SimpleCommand(&createHandler{}),
	}

	cmd.Flags().String("name", "", "Board name (default: New Board)")
	cmd.Flags().String("emoji", "", "Board emoji")

	handler.AddOutputFlags(cmd)

	return cmd
}

// createHandler implements handler.Handler for board creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	svc := args.CLI.Boards()

	b, res := svc.CreateBoard(ctx)
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", app.ErrSaveFailed, res.Error)
	}

	if args.Has("name") {
		if err := svc.RenameBoard(args.GetString("name", "")); err != nil {
			return nil, fmt.Errorf("board rename error: %w", err)
		}
	}
	if args.Has("emoji") {
		if err := svc.SetBoardEmoji(args.GetString("emoji", "")); err != nil {
			return nil, fmt.Errorf("board emoji error: %w", err)
		}
	}

	created := *svc.SelectedBoard()
	return &boardResult{
		Board:   created,
		message: fmt.Sprintf("Board '%s' created successfully (ID: %s)", created.Title(), b.ID),
	}, nil
}
