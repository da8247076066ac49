package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
)

// EmojiCmd returns the board emoji subcommand
func EmojiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emoji [emoji]",
		Short: "Set or clear a board's emoji",
		Long: `Set the emoji shown before the board name. Omit it to clear.

Examples:
  kanbanned board emoji 🚀
  kanbanned board emoji --board="Roadmap"
`,
		RunE: handler.SimpleCommand(&emojiHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// emojiHandler implements handler.Handler for board emoji changes
type emojiHandler struct{}

// Execute implements the Handler interface
func (h *emojiHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if len(args.Args) > 1 {
		return nil, fmt.Errorf("%w: expected at most one emoji", cli.ErrUsage)
	}
	if _, err := args.Board(); err != nil {
		return nil, err
	}

	emoji := ""
	if len(args.Args) == 1 {
		emoji = args.Args[0]
	}

	svc := args.CLI.Boards()
	if err := svc.SetBoardEmoji(emoji); err != nil {
		return nil, fmt.Errorf("board emoji error: %w", err)
	}

	b := *svc.SelectedBoard()
	msg := fmt.Sprintf("Board is now '%s'", b.Title())
	return &boardResult{Board: b, message: msg}, nil
}
