package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/config"
	"github.com/thenoetrevino/kanbanned/internal/notify"
	"github.com/thenoetrevino/kanbanned/internal/persistence"
	"github.com/thenoetrevino/kanbanned/internal/schema"
	"github.com/thenoetrevino/kanbanned/internal/storage"
)

// App holds the loaded board data and everything needed to change and
// persist it. This is the main application container shared by the CLI
// and the TUI.
type App struct {
	Config *config.Config

	// Engine persists AppData to the configured store
	Engine *persistence.Engine

	// Boards applies edits and drops to the loaded data
	Boards *board.Service

	// Notifications collects user-facing messages, load feedback included
	Notifications *notify.Queue

	// Loaded is the result of the initial load
	Loaded schema.LoadResult

	logger *slog.Logger
	closed bool
}

// StorageOptions converts the storage section of cfg for storage.Open
func StorageOptions(cfg *config.Config) storage.Options {
	s := cfg.Storage
	return storage.Options{
		Backend:       s.Backend,
		Path:          s.Path,
		QuotaBytes:    s.QuotaBytes,
		RedisAddr:     s.Redis.Addr,
		RedisPassword: s.Redis.Password,
		RedisDB:       s.Redis.DB,
		RedisPrefix:   s.Redis.Prefix,
	}
}

// New opens storage, loads the data and wires the board service.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	ac := appConfig{}
	for _, opt := range opts {
		opt(&ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	store := ac.store
	if !ac.haveStore {
		var err error
		store, err = storage.Open(ctx, StorageOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	engineOpts := []persistence.Option{
		persistence.WithDelay(cfg.Persistence.Debounce()),
		persistence.WithLogger(ac.logger),
	}
	if ac.afterFunc != nil {
		engineOpts = append(engineOpts, persistence.WithAfterFunc(ac.afterFunc))
	}
	engine := persistence.NewEngine(store, engineOpts...)

	loaded := engine.Load(ctx)
	queue := notify.NewQueue()
	for _, n := range board.LoadFeedback(loaded) {
		queue.Add(n.Level, n.Message)
	}

	svcOpts := []board.Option{
		board.WithSink(queue),
		board.WithLogger(ac.logger),
	}
	if ac.ids != nil {
		svcOpts = append(svcOpts, board.WithIDs(ac.ids))
	}

	ac.logger.Debug("app initialised",
		"backend", cfg.Storage.Backend,
		"boards", len(loaded.Data.Boards),
		"used_defaults", loaded.UsedDefaults,
	)

	return &App{
		Config:        cfg,
		Engine:        engine,
		Boards:        board.NewService(loaded.Data, engine, svcOpts...),
		Notifications: queue,
		Loaded:        loaded,
		logger:        ac.logger,
	}, nil
}

// ErrSaveFailed is returned by Close when the final flush could not be saved
var ErrSaveFailed = errors.New("failed to save pending changes")

// Close flushes any pending debounced save and releases the store.
// It is safe to call more than once.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	ctx := context.Background()
	var flushErr error
	if res, ok := a.Engine.FlushPending(ctx); ok && !res.Success {
		flushErr = fmt.Errorf("%w: %s", ErrSaveFailed, res.Error)
	}
	if err := a.Engine.Close(ctx); err != nil {
		return errors.Join(flushErr, err)
	}
	return flushErr
}
