package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dori/dayly/internal/config"
	"github.com/dori/dayly/internal/logging"
	"github.com/dori/dayly/internal/model"
	"github.com/dori/dayly/internal/store"
	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned when another instance holds the lock
var ErrAlreadyRunning = errors.New("another instance of dayly is already running")

// App holds the application state and dependencies
type App struct {
	Config   config.Config
	Store    *store.Store
	Logger   *zap.Logger
	lockFile *flock.Flock
}

// New creates a new application instance
func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if cfg.SingleInstance {
		if err := app.acquireLock(); err != nil {
			_ = logging.Sync(logger)
			return nil, err
		}
	}

	var opts []store.Option
	opts = append(opts, store.WithLogger(logger.Named("store")))
	if cfg.SeedDemo {
		opts = append(opts, store.WithTasks(DemoTasks(time.Now())))
	}
	app.Store = store.New(opts...)

	logger.Info("started",
		zap.String("theme", cfg.Theme),
		zap.Bool("seed_demo", cfg.SeedDemo),
		zap.Int("tasks", app.Store.Len()),
	)
	return app, nil
}

// Context opens the store scope screens are built from
func (a *App) Context(parent context.Context) context.Context {
	return store.NewContext(parent, a.Store)
}

// DemoTasks returns the two sample tasks shown on first run, dated today
func DemoTasks(now time.Time) []model.Task {
	today := model.DayKey(now)
	return []model.Task{
		{ID: model.NewID(), Title: "Task 1", Date: today},
		{ID: model.NewID(), Title: "Task 2", Date: today, Done: true},
	}
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	dir := a.Config.RuntimeDir
	if dir == "" {
		dir = config.DefaultRuntimeDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	a.lockFile = flock.New(filepath.Join(dir, "dayly.lock"))

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return ErrAlreadyRunning
	}
	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() error {
	if a.lockFile == nil {
		return nil
	}
	return a.lockFile.Unlock()
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.Store != nil {
		a.Store.Close()
	}

	if err := a.releaseLock(); err != nil {
		errs = append(errs, fmt.Errorf("failed to release lock: %w", err))
	}

	a.Logger.Info("stopped")
	// Sync on a regular file succeeds; ignore EINVAL from special files
	_ = logging.Sync(a.Logger)

	return errors.Join(errs...)
}
