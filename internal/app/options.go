package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanbanned/internal/persistence"
	"github.com/thenoetrevino/kanbanned/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store     storage.Store
	haveStore bool
	logger    *slog.Logger
	ids       persistence.IDGenerator
	afterFunc persistence.AfterFunc
}

// WithStore uses store instead of opening the configured backend.
// A nil store runs without persistence.
func WithStore(store storage.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
		cfg.haveStore = true
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithIDs replaces the id generator
func WithIDs(ids persistence.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}

// WithAfterFunc replaces the debounce timer source
func WithAfterFunc(f persistence.AfterFunc) Option {
	return func(cfg *appConfig) {
		cfg.afterFunc = f
	}
}
