package tag

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// UpdateCmd returns the tag update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <tag>",
		Short: "Rename or recolor a tag",
		Long: `Update a tag, found by id or case-insensitive name.

Examples:
  kanbanned tag update bug --name="defect"
  kanbanned tag update tag-feature --color="#A855F7"
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().String("name", "", "New tag name")
	cmd.Flags().String("color", "", "New color in hex format #RRGGBB")

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for tag updates
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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
	id := tag.ID

	var patch board.TagPatch
	if args.Has("name") {
		name := args.GetString("name", "")
		patch.Name = &name
	}
	if args.Has("color") {
		color, err := handler.NewFlagParser(args.GetCmd()).ParseColor("color")
		if err != nil {
			return nil, err
		}
		patch.Color = &color
	}

	svc := args.CLI.Boards()
	if err := svc.UpdateTag(id, patch); err != nil {
		return nil, fmt.Errorf("tag update error: %w", err)
	}

	updated := svc.SelectedBoard()
	r := newResult(updated, *updated.Tag(id))
	r.message = "Tag updated:"
	return r, nil
}

func parseUpdateFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("color") {
		return fmt.Errorf("%w: at least one of --name or --color is required", cli.ErrUsage)
	}
	return parseColorFlag(cmd)
}
