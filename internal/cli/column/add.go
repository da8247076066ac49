package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column to the end of a board",
		Long: `Add a column to the end of the selected board.

Examples:
  # Add "New Column"
  kanbanned column add

  # Add a named column and capture its id
  COLUMN_ID=$(kanbanned column add --name="Blocked" --quiet)
`,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	cmd.Flags().String("name", "", "Column name (default: New Column)")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for adding columns
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if _, err := args.Board(); err != nil {
		return nil, err
	}

	svc := args.CLI.Boards()
	col, err := svc.AddColumn()
	if err != nil {
		return nil, fmt.Errorf("column add error: %w", err)
	}

	if args.Has("name") {
		if err := svc.RenameColumn(col.ID, args.GetString("name", "")); err != nil {
			return nil, fmt.Errorf("column rename error: %w", err)
		}
	}

	b := svc.SelectedBoard()
	r := newResult(b, col.ID, "")
	r.message = fmt.Sprintf("Column '%s' added to %s", r.Name, b.Title())
	return r, nil
}
