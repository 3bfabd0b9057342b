package db_repo

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/db"
	"github.com/justtrackio/crudgen/pkg/log"
)

type OrmSettings struct {
	Driver     string `cfg:"driver" default:"sqlite3"`
	LogQueries bool   `cfg:"log_queries" default:"false"`
}

func NewOrm(ctx context.Context, config cfg.Config, logger log.Logger, name string, options ...db.ConnectionOption) (*gorm.DB, error) {
	dbClient, err := db.NewConnection(ctx, config, logger, name, options...)
	if err != nil {
		return nil, fmt.Errorf("can not create dbClient: %w", err)
	}

	settings := OrmSettings{}
	if err = config.UnmarshalKey(db.SettingsKey(name), &settings); err != nil {
		return nil, fmt.Errorf("can not read orm settings for connection %s: %w", name, err)
	}

	return NewOrmWithInterfaces(ctx, logger, dbClient.DB, settings)
}

func NewOrmWithInterfaces(ctx context.Context, logger log.Logger, dbClient gorm.SQLCommon, settings OrmSettings) (*gorm.DB, error) {
	orm, err := gorm.Open(settings.Driver, dbClient)
	if err != nil {
		return nil, fmt.Errorf("could not create gorm: %w", err)
	}

	orm.LogMode(settings.LogQueries)
	orm.SetLogger(&ormLogger{
		ctx:    ctx,
		logger: logger.WithChannel("orm"),
	})
	orm = orm.Set("gorm:save_associations", false)

	return orm, nil
}

type ormLogger struct {
	ctx    context.Context
	logger log.Logger
}

func (l *ormLogger) Print(values ...any) {
	l.logger.Debug(l.ctx, "%s", fmt.Sprint(gorm.LogFormatter(values...)...))
}
