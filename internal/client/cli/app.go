// Package cli содержит команды storefront на cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/auth"
	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/client/session"
	"github.com/iudanet/storefront/internal/client/shop"
	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/client/storage/boltdb"
	"github.com/iudanet/storefront/internal/client/storage/sqlite"
	"github.com/iudanet/storefront/internal/config"
)

// VersionInfo is set via ldflags during build
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Deps are the services a command runs against
type Deps struct {
	Auth    *auth.Service
	Shop    *shop.Service
	Session *session.Manager
	store   storage.SessionStore
}

// Close closes the session store
func (d *Deps) Close() error {
	if d == nil || d.store == nil {
		return nil
	}
	return d.store.Close()
}

// Builder creates Deps once flags are parsed
type Builder func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Deps, error)

// OpenStore opens the session store selected by cfg.StorageDriver
func OpenStore(ctx context.Context, cfg config.Config) (storage.SessionStore, error) {
	switch cfg.StorageDriver {
	case config.StorageBolt:
		return boltdb.New(ctx, cfg.DBPath)
	case config.StorageSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Bootstrap собирает хранилище, API клиент и сервисы
func Bootstrap(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Deps, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sessions := session.NewManager(store, logger)

	client, err := api.NewClient(cfg.ServerURL, store,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(logger),
		api.OnSessionExpired(func() {
			sessions.Reset()
			logger.Warn("session expired, local session cleared")
		}),
	)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	if _, err := sessions.Load(ctx); err != nil {
		return nil, errors.Join(err, store.Close())
	}

	return &Deps{
		Auth:    auth.NewService(client, store, sessions, cfg.RegistrationPolicy, logger),
		Shop:    shop.NewService(client, sessions, logger),
		Session: sessions,
		store:   store,
	}, nil
}

// App держит состояние одного запуска CLI
type App struct {
	cfg     config.Config
	io      iocli.IO
	logger  *slog.Logger
	level   *slog.LevelVar
	build   Builder
	deps    *Deps
	version VersionInfo
}

// NewApp создает приложение. level may be nil; build defaults to Bootstrap.
func NewApp(cfg config.Config, io iocli.IO, logger *slog.Logger, level *slog.LevelVar, build Builder, version VersionInfo) *App {
	if build == nil {
		build = Bootstrap
	}
	if level == nil {
		level = &slog.LevelVar{}
	}
	return &App{
		cfg:     cfg,
		io:      io,
		logger:  logger,
		level:   level,
		build:   build,
		version: version,
	}
}

// setup runs after flag parsing and before any command that talks to the backend
func (a *App) setup(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := config.ParseLogLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.level.Set(level)

	deps, err := a.build(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.deps = deps
	return nil
}

// teardown closes what setup opened
func (a *App) teardown() error {
	if a.deps == nil {
		return nil
	}
	err := a.deps.Close()
	a.deps = nil
	return err
}

// Close releases resources left open when a command failed before teardown ran
func (a *App) Close() error {
	return a.teardown()
}
