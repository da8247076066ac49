package tag

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// ListCmd returns the tag list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a board's tags",
		Long: `List the tags of the selected board in zone order.

Examples:
  kanbanned tag list
  kanbanned tag list --board="Roadmap" --json
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for tag listing
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	b, err := args.Board()
	if err != nil {
		return nil, err
	}

	result := &tagListResult{BoardID: b.ID, Tags: make([]*tagResult, 0, len(b.Tags))}
	for _, tag := range b.Tags {
		result.Tags = append(result.Tags, newResult(b, tag))
	}
	return result, nil
}
