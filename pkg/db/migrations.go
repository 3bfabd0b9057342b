package db

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/justtrackio/crudgen/pkg/log"
)

type MigrationProvider func(ctx context.Context, logger log.Logger, settings *Settings, db *sqlx.DB, fsys fs.FS) error

var migrationProviders = map[string]MigrationProvider{
	"goose": runMigrationGoose,
}

func AddMigrationProvider(name string, provider MigrationProvider) {
	migrationProviders[name] = provider
}

// RunMigrations applies all pending migrations found below the configured path. fsys may be nil,
// the path is then resolved on the local file system.
func RunMigrations(ctx context.Context, logger log.Logger, settings *Settings, db *sqlx.DB, fsys fs.FS) error {
	logger = logger.WithChannel("db-migrations")

	if !settings.Migrations.Enabled {
		logger.Info(ctx, "migrations not enabled")

		return nil
	}

	if settings.Migrations.Path == "" {
		logger.Info(ctx, "migrations enabled but no path provided")

		return nil
	}

	provider, ok := migrationProviders[settings.Migrations.Provider]
	if !ok {
		return fmt.Errorf("there is no migration provider of type %s available", settings.Migrations.Provider)
	}

	start := time.Now()

	if err := provider(ctx, logger, settings, db, fsys); err != nil {
		return fmt.Errorf("running migration provider %s failed: %w", settings.Migrations.Provider, err)
	}

	logger.Info(ctx, "migrated db in %s", time.Since(start))

	return nil
}
