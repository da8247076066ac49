// Package persistence bridges AppData and a storage.Store. Loads are
// repaired through schema.Normalize, saves report failures as values, and
// interactive edits are coalesced by a debounce Scheduler.
package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/schema"
	"github.com/thenoetrevino/kanbanned/internal/storage"
)

// DefaultDelay is the debounce window used when none is configured
const DefaultDelay = 300 * time.Millisecond

// Engine loads and saves AppData under a single key. A nil store means
// there is no storage environment: loads return defaults and saves succeed
// without doing anything.
type Engine struct {
	store     storage.Store
	key       string
	delay     time.Duration
	logger    *slog.Logger
	scheduler *Scheduler
}

// Option configures an Engine
type Option func(*engineConfig)

type engineConfig struct {
	key       string
	delay     time.Duration
	logger    *slog.Logger
	afterFunc AfterFunc
}

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(cfg *engineConfig) {
		cfg.key = key
	}
}

// WithDelay sets the debounce window
func WithDelay(d time.Duration) Option {
	return func(cfg *engineConfig) {
		cfg.delay = d
	}
}

// WithLogger sets the logger for load and save failures
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *engineConfig) {
		cfg.logger = logger
	}
}

// WithAfterFunc replaces the timer source used for debounced saves
func WithAfterFunc(f AfterFunc) Option {
	return func(cfg *engineConfig) {
		cfg.afterFunc = f
	}
}

// NewEngine creates an engine over store
func NewEngine(store storage.Store, opts ...Option) *Engine {
	cfg := engineConfig{
		key:   models.StorageKey,
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.delay <= 0 {
		cfg.delay = DefaultDelay
	}

	e := &Engine{
		store:  store,
		key:    cfg.key,
		delay:  cfg.delay,
		logger: cfg.logger,
	}
	e.scheduler = NewScheduler(e.Save, cfg.afterFunc)
	return e
}

// Delay returns the debounce window
func (e *Engine) Delay() time.Duration {
	return e.delay
}

// Load reads and repairs the stored data. It never fails: every problem
// is folded into the returned LoadResult.
func (e *Engine) Load(ctx context.Context) schema.LoadResult {
	if e.store == nil {
		return schema.Defaults(false)
	}

	raw, ok, err := e.store.Get(ctx, e.key)
	if err != nil {
		e.logger.Warn("failed to read stored data", "key", e.key, "error", err)
		return schema.Defaults(false)
	}
	if !ok || raw == "" {
		return schema.Defaults(false)
	}

	tree, err := decode(raw)
	if err != nil {
		e.logger.Warn("stored data is not valid JSON", "key", e.key, "error", err)
		return schema.Defaults(true)
	}

	res := schema.Normalize(tree)
	if res.UsedDefaults || res.Discarded.Total() > 0 || res.Recovered.Total() > 0 {
		e.logger.Info("repaired stored data",
			"used_defaults", res.UsedDefaults,
			"discarded", res.Discarded.Total(),
			"recovered", res.Recovered.Total(),
		)
	}
	return res
}

// Save serialises data and writes it immediately
func (e *Engine) Save(ctx context.Context, data models.AppData) SaveResult {
	if e.store == nil {
		return saved()
	}

	raw, err := encode(data)
	if err != nil {
		e.logger.Error("failed to encode data", "error", err)
		return failed(ErrorUnknown)
	}

	if err := e.store.Set(ctx, e.key, raw); err != nil {
		if errors.Is(err, storage.ErrQuotaExceeded) {
			e.logger.Warn("storage quota exceeded", "key", e.key, "bytes", len(raw), "error", err)
			return failed(ErrorQuotaExceeded)
		}
		e.logger.Error("failed to save data", "key", e.key, "error", err)
		return failed(ErrorUnknown)
	}
	return saved()
}

// SaveDebounced schedules data to be saved once no further call arrives
// within the engine's delay. onComplete may be nil.
func (e *Engine) SaveDebounced(data models.AppData, onComplete func(SaveResult)) {
	e.scheduler.Schedule(data, onComplete, e.delay)
}

// FlushPending writes any pending debounced value now. ok is false when
// nothing was pending. Call it before shutting down.
func (e *Engine) FlushPending(ctx context.Context) (SaveResult, bool) {
	return e.scheduler.Flush(ctx)
}

// HasPending reports whether a debounced save is waiting
func (e *Engine) HasPending() bool {
	return e.scheduler.Pending()
}

// Close flushes pending work and closes the store
func (e *Engine) Close(ctx context.Context) error {
	if res, ok := e.FlushPending(ctx); ok && !res.Success {
		e.logger.Warn("final flush failed", "error", res.Error)
	}
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}
