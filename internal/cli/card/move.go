package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card>",
		Short: "Move a card to another column, zone or position",
		Long: `Move a card the way a drop on the board would.

  --before <card>     drop on another card: take its position and its zone's tag
  --column <column>   drop on a column: append, keeping the card's tag
  --tag <tag>         drop on that tag's zone (with --column, or the card's column)
  --untagged          drop on the untagged zone, clearing the tag

Examples:
  kanbanned card move card-1 --column="Doing"
  kanbanned card move card-1 --column="Doing" --untagged
  kanbanned card move card-3 --before=card-1
`,
		RunE: handler.Command(&moveHandler{}, parseMoveFlags),
	}

	cmd.Flags().String("column", "", "Target column id or name")
	cmd.Flags().String("tag", "", "Target tag zone, by id or name")
	cmd.Flags().Bool("untagged", false, "Target the untagged zone")
	cmd.Flags().String("before", "", "Card to drop onto")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// moveHandler implements handler.Handler for card moves
type moveHandler struct{}

// Execute implements the Handler interface
func (h *moveHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a card"); err != nil {
		return nil, err
	}
	b, err := args.Board()
	if err != nil {
		return nil, err
	}
	found, err := board.FindCard(b, args.Args[0])
	if err != nil {
		return nil, err
	}
	id := found.ID

	ev, err := dropEvent(b, id, args)
	if err != nil {
		return nil, err
	}

	intent, err := args.CLI.Drop(ev)
	if err != nil {
		return nil, fmt.Errorf("card move error: %w", err)
	}

	r, err := locate(args.CLI.Boards().SelectedBoard(), id)
	if err != nil {
		return nil, err
	}
	switch intent.(type) {
	case dnd.NoOp:
		r.message = fmt.Sprintf("Card '%s' did not move", r.Title)
	default:
		r.message = fmt.Sprintf("Card '%s' moved", r.Title)
	}
	return r, nil
}

// dropEvent builds the DragEnd a pointer drop at the requested target
// would produce
func dropEvent(b *models.Board, cardID string, args *handler.Arguments) (dnd.DragEnd, error) {
	ev := dnd.DragEnd{ActiveID: cardID}

	if args.Has("before") {
		over, err := board.FindCard(b, args.GetString("before", ""))
		if err != nil {
			return ev, err
		}
		loc, _ := b.FindCard(over.ID)
		col := b.Columns[loc.ColumnIndex]
		zoneTag := ""
		if tag := b.ResolveTag(over.TagID); tag != nil {
			zoneTag = tag.ID
		}
		ev.OverID = over.ID
		ev.Data = dnd.CardPayload(col.ID, zoneTag)
		return ev, nil
	}

	columnID := ""
	if args.Has("column") {
		col, err := board.FindColumn(b, args.GetString("column", ""))
		if err != nil {
			return ev, err
		}
		columnID = col.ID
	} else {
		loc, _ := b.FindCard(cardID)
		columnID = b.Columns[loc.ColumnIndex].ID
	}

	switch {
	case args.GetBool("untagged"):
		ev.OverID = models.ZoneID(columnID, "")
		ev.Data = dnd.ZonePayload(columnID, "")
	case args.Has("tag"):
		tag, err := board.FindTag(b, args.GetString("tag", ""))
		if err != nil {
			return ev, err
		}
		ev.OverID = models.ZoneID(columnID, tag.ID)
		ev.Data = dnd.ZonePayload(columnID, tag.ID)
	default:
		ev.OverID = models.ColumnDropID(columnID)
	}
	return ev, nil
}

func parseMoveFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	before := flags.Changed("before")
	zone := flags.Changed("tag") || flags.Changed("untagged")

	switch {
	case before && (zone || flags.Changed("column")):
		return fmt.Errorf("%w: --before cannot be combined with --column, --tag or --untagged", cli.ErrUsage)
	case flags.Changed("tag") && flags.Changed("untagged"):
		return fmt.Errorf("%w: --tag and --untagged cannot be combined", cli.ErrUsage)
	case !before && !zone && !flags.Changed("column"):
		return fmt.Errorf("%w: one of --before, --column, --tag or --untagged is required", cli.ErrUsage)
	}
	return nil
}
