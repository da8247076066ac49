package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column>",
		Short: "Move a column to another position",
		Long: `Move a column to a zero-based position, or onto another column's
position with --over. Other columns shift to make room.

Examples:
  kanbanned column move "Done" --to=0
  kanbanned column move "Done" --over="To Do"
`,
		RunE: handler.Command(&moveHandler{}, parseMoveFlags),
	}

	cmd.Flags().Int("to", -1, "Target position (0 = first)")
	cmd.Flags().String("over", "", "Column whose position to take")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// moveHandler implements handler.Handler for column moves
type moveHandler struct{}

// Execute implements the Handler interface
func (h *moveHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a column"); err != nil {
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

	var overID string
	if args.Has("over") {
		over, err := board.FindColumn(b, args.GetString("over", ""))
		if err != nil {
			return nil, err
		}
		overID = over.ID
	} else {
		to := args.GetInt("to", -1)
		if to >= len(b.Columns) {
			return nil, fmt.Errorf("%w: --to must be below %d", cli.ErrUsage, len(b.Columns))
		}
		overID = b.Columns[to].ID
	}

	intent, err := args.CLI.Drop(dnd.DragEnd{ActiveID: id, OverID: overID})
	if err != nil {
		return nil, fmt.Errorf("column move error: %w", err)
	}

	r := newResult(args.CLI.Boards().SelectedBoard(), id, "")
	if _, moved := intent.(dnd.ReorderColumns); moved {
		r.message = fmt.Sprintf("Column '%s' moved to position %d", r.Name, r.Position)
	} else {
		r.message = fmt.Sprintf("Column '%s' is already at position %d", r.Name, r.Position)
	}
	return r, nil
}

func parseMoveFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	over, err := parser.ParseStringOptional("over")
	if err != nil {
		return err
	}
	if over != "" {
		return nil
	}
	if !cmd.Flags().Changed("to") {
		return fmt.Errorf("%w: one of --to or --over is required", cli.ErrUsage)
	}
	_, err = parser.ParseIndex("to")
	return err
}
