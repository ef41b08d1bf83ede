package container

import (
	"context"
	"fmt"

	"launchdash/adapters/excel"
	"launchdash/adapters/postgres"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/callbacks"
	"launchdash/internal/config"
	"launchdash/internal/controls"
	"launchdash/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB     *sqlx.DB
	Source ports.LaunchSource

	// Loaded once at startup, read-only afterwards
	Table      *launch.Table
	Registry   *controls.Registry
	Dispatcher *callbacks.Dispatcher
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &Container{Config: cfg, Logger: logger}, nil
}

// Init selects the launch source, loads the table and builds the controls and dispatcher
func (c *Container) Init(ctx context.Context) error {
	if err := c.initSource(ctx); err != nil {
		return err
	}

	table, err := c.Source.Load(ctx)
	if err != nil {
		if c.DB != nil {
			c.DB.Close()
			c.DB = nil
		}
		return err
	}
	c.Table = table
	c.Registry = controls.NewRegistry(table)
	c.Dispatcher = callbacks.NewDispatcher(table, c.Registry, c.Logger)

	bounds := table.PayloadBounds()
	c.Logger.Info("Loaded %d launches across %d sites from %s (payload %g-%g kg)",
		table.Len(), len(table.Sites()), c.Source.Describe(), bounds.Low, bounds.High)
	return nil
}

// initSource prefers Postgres when a database URL is configured
func (c *Container) initSource(ctx context.Context) error {
	if c.Source != nil {
		return nil
	}

	data := c.Config.Data
	if data.DatabaseURL == "" {
		cfg := excel.DefaultExcelConfig()
		cfg.FilePath = data.File
		if data.Sheet != "" {
			cfg.Sheet = data.Sheet
		}
		c.Source = excel.NewLaunchSource(cfg, c.Logger)
		return nil
	}

	db, err := postgres.Connect(ctx, data.DatabaseURL)
	if err != nil {
		return err
	}
	source, err := postgres.NewLaunchRepository(db, data.Table, c.Logger)
	if err != nil {
		db.Close()
		return err
	}
	c.DB = db
	c.Source = source
	return nil
}

// Shutdown releases infrastructure held by the container
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.Sync()
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
