package db

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/log"
)

type connectionOptions struct {
	migrations fs.FS
}

type ConnectionOption func(opts *connectionOptions)

// WithMigrationFs reads the migration files from fsys instead of the local file system.
func WithMigrationFs(fsys fs.FS) ConnectionOption {
	return func(opts *connectionOptions) {
		opts.migrations = fsys
	}
}

func NewConnection(ctx context.Context, config cfg.Config, logger log.Logger, name string, options ...ConnectionOption) (*sqlx.DB, error) {
	settings, err := ReadSettings(config, name)
	if err != nil {
		return nil, err
	}

	return NewConnectionFromSettings(ctx, logger, settings, options...)
}

// NewConnectionFromSettings opens the pool, makes sure the database is reachable and applies
// pending migrations before handing the connection out.
func NewConnectionFromSettings(ctx context.Context, logger log.Logger, settings *Settings, options ...ConnectionOption) (*sqlx.DB, error) {
	var err error
	var factory DriverFactory
	var connection *sqlx.DB

	opts := &connectionOptions{}
	for _, opt := range options {
		opt(opts)
	}

	if factory, err = GetDriverFactory(settings.Driver); err != nil {
		return nil, fmt.Errorf("can not get driver factory: %w", err)
	}

	if connection, err = sqlx.Open(settings.Driver, factory.GetDSN(settings)); err != nil {
		return nil, fmt.Errorf("can not open %s connection: %w", settings.Driver, err)
	}

	factory.ConfigurePool(connection.DB, settings)

	if err = connection.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can not ping %s database %s: %w", settings.Driver, settings.Uri.Database, err)
	}

	logger.WithChannel("db").Info(ctx, "connected to %s database %s", settings.Driver, settings.Uri.Database)

	if err = RunMigrations(ctx, logger, settings, connection, opts.migrations); err != nil {
		return nil, fmt.Errorf("can not run migrations: %w", err)
	}

	return connection, nil
}
