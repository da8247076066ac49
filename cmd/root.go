package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/cli/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/card"
	"github.com/thenoetrevino/kanbanned/internal/cli/column"
	"github.com/thenoetrevino/kanbanned/internal/cli/styles"
	"github.com/thenoetrevino/kanbanned/internal/cli/tag"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/launcher"
	"github.com/thenoetrevino/kanbanned/internal/logging"
)

// NewRootCmd builds the kanbanned command tree. With no subcommand it
// opens the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kanbanned",
		Short: "kanbanned - a kanban board with tag zones",
		Long: `kanbanned is a kanban board for the terminal. Cards live in columns and
are grouped into tag zones; dragging a card into a zone retags it.

Run without arguments to open the board, or use the subcommands to script it.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Close()
		},
		RunE: runTUI,
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(tag.TagCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	})

	return rootCmd
}

// setup starts file logging and applies the configured colors before any
// command runs
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// Commands report the bad config themselves; keep logs quiet
		logging.Discard()
		return nil
	}

	if err := logging.Init(config.DataDir(), cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logging.Discard()
	}
	styles.Init(cfg.ColorScheme)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return launcher.Launch()
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
