package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanned/internal/app"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/tui/core"
)

// Launch starts the TUI application and flushes pending saves on the way out
func Launch() error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open board data: %w", err)
	}

	runErr := run(ctx, core.New(ctx, application))

	// Close flushes the debounced save, so it runs whatever ended the program
	if err := application.Close(); err != nil {
		slog.Error("error closing application", "error", err)
		if runErr == nil {
			return err
		}
	}
	return runErr
}

func run(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		<-errChan
	}
	return nil
}
