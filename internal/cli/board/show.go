package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board with its columns and cards",
		Long: `Show the selected board, listing every column and its cards in order.

Examples:
  kanbanned board show
  kanbanned board show --board="Roadmap" --json
`,
		RunE: handler.SimpleCommand(&showHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// showHandler implements handler.Handler for showing a board
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	b, err := args.Board()
	if err != nil {
		return nil, err
	}
	return &boardResult{Board: b.Clone()}, nil
}
