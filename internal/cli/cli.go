package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanbanned/internal/app"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/notify"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the board service
	ctx context.Context
}

// NewCLI loads the configuration and opens the board data
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Boards returns the board service
func (c *CLI) Boards() *board.Service {
	return c.App.Boards
}

// UseBoard selects the board named by ref, an id or a case-insensitive
// name. An empty ref keeps the first board.
func (c *CLI) UseBoard(ref string) (*models.Board, error) {
	svc := c.App.Boards
	if ref == "" {
		b := svc.SelectedBoard()
		if b == nil {
			return nil, board.ErrNoBoardSelected
		}
		return b, nil
	}

	b, err := board.FindBoard(svc.Data(), ref)
	if err != nil {
		return nil, err
	}
	if err := svc.SelectBoard(b.ID); err != nil {
		return nil, err
	}
	return svc.SelectedBoard(), nil
}

// Drop resolves a drag gesture on the selected board and applies the
// result. A column dropped on the delete zone is only parked; the caller
// confirms or cancels it.
func (c *CLI) Drop(ev dnd.DragEnd) (dnd.Intent, error) {
	svc := c.App.Boards
	b := svc.SelectedBoard()
	if b == nil {
		return nil, board.ErrNoBoardSelected
	}
	intent := dnd.Resolve(b, ev)
	if err := svc.Apply(intent); err != nil {
		return nil, err
	}
	return intent, nil
}

// Notifications drains the messages queued while the command ran
func (c *CLI) Notifications() []notify.Notification {
	return c.App.Notifications.Drain()
}

// Close flushes pending saves and releases storage
func (c *CLI) Close() error {
	return c.App.Close()
}
