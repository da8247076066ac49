package tag

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// DeleteCmd returns the tag delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Delete a tag",
		Long: `Delete a tag. Cards that used it are kept and show as untagged.

Examples:
  kanbanned tag delete feature
`,
		RunE: handler.SimpleCommand(&deleteHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for tag deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a tag"); err != nil {
		return nil, err
	}
	b, err := args.Board()
	if err != nil {
		return nil, err
	}
	tag, err := board.FindTag(b, args.Args[0])
	if err != nil {
		return nil, err
	}
	r := newResult(b, *tag)

	if err := args.CLI.Boards().DeleteTag(r.ID); err != nil {
		return nil, fmt.Errorf("tag delete error: %w", err)
	}

	r.message = "Tag deleted:"
	return r, nil
}
