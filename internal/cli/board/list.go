package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards with their column, card and tag counts.

Examples:
  kanbanned board list
  kanbanned board list --json
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for board listing
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	data := args.CLI.Boards().Data()

	result := &boardListResult{Boards: make([]boardSummary, 0, len(data.Boards))}
	for i := range data.Boards {
		result.Boards = append(result.Boards, summarize(&data.Boards[i]))
	}
	return result, nil
}
