package db

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/justtrackio/crudgen/pkg/log"
	"github.com/pressly/goose/v3"
)

// goose keeps its dialect, logger and file system in package globals
var gooseLck sync.Mutex

func runMigrationGoose(ctx context.Context, logger log.Logger, settings *Settings, db *sqlx.DB, fsys fs.FS) error {
	gooseLck.Lock()
	defer gooseLck.Unlock()

	goose.SetLogger(newGooseLogger(ctx, logger))
	goose.SetBaseFS(fsys)
	goose.SetTableName(settings.Migrations.Table)

	if err := goose.SetDialect(settings.Driver); err != nil {
		return fmt.Errorf("can not set db dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB, settings.Migrations.Path, goose.WithAllowMissing()); err != nil {
		return fmt.Errorf("can not run up migrations from path %s: %w", settings.Migrations.Path, err)
	}

	return nil
}

type gooseLogger struct {
	ctx    context.Context
	logger log.Logger
}

func newGooseLogger(ctx context.Context, logger log.Logger) goose.Logger {
	return gooseLogger{
		ctx:    ctx,
		logger: logger,
	}
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.logger.Error(g.ctx, strings.TrimSpace(format), v...)
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Info(g.ctx, strings.TrimSpace(format), v...)
}
