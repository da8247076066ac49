package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column> <name>",
		Short: "Rename a column",
		Long: `Rename a column, found by id or case-insensitive name.

Examples:
  kanbanned column rename "In Review" "QA"
`,
		RunE: handler.SimpleCommand(&renameHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// renameHandler implements handler.Handler for column renames
type renameHandler struct{}

// Execute implements the Handler interface
func (h *renameHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 2, "a column and a new name"); err != nil {
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
	id := col.ID

	svc := args.CLI.Boards()
	if err := svc.RenameColumn(id, args.Args[1]); err != nil {
		return nil, fmt.Errorf("column rename error: %w", err)
	}

	r := newResult(svc.SelectedBoard(), id, "")
	r.message = fmt.Sprintf("Column renamed to '%s'", r.Name)
	return r, nil
}
