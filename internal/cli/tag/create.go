package tag

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// CreateCmd returns the tag create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tag",
		Long: `Create a tag on the selected board. If a tag with that name already
exists (case-insensitive) it is returned unchanged.

Examples:
  # Create tag with the next palette color
  kanbanned tag create docs

  # Pick the color, capture the id
  TAG_ID=$(kanbanned tag create ops --color="#22C55E" --quiet)
`,
		RunE: handler.Command(&createHandler{}, parseColorFlag),
	}

	cmd.Flags().String("color", "", "Tag color in hex format #RRGGBB")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// createHandler implements handler.Handler for tag creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a tag name"); err != nil {
		return nil, err
	}
	if _, err := args.Board(); err != nil {
		return nil, err
	}

	svc := args.CLI.Boards()
	existing := svc.SelectedBoard().TagByName(args.Args[0]) != nil

	tag, err := svc.CreateTag(args.Args[0])
	if err != nil {
		return nil, fmt.Errorf("tag creation error: %w", err)
	}

	if args.Has("color") && !existing {
		color, err := handler.NewFlagParser(args.GetCmd()).ParseColor("color")
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateTag(tag.ID, board.TagPatch{Color: &color}); err != nil {
			return nil, fmt.Errorf("tag update error: %w", err)
		}
	}

	b := svc.SelectedBoard()
	r := newResult(b, *b.Tag(tag.ID))
	if existing {
		r.message = "Tag already exists:"
	} else {
		r.message = "Tag created:"
	}
	return r, nil
}

func parseColorFlag(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("color") {
		return nil
	}
	_, err := handler.NewFlagParser(cmd).ParseColor("color")
	return err
}
