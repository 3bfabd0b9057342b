package appctx

import (
	"context"
	"fmt"

	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/db"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/log"
	"github.com/justtrackio/crudgen/pkg/uuid"
)

const DefaultConnectionName = "default"

// AppContext carries the shared services of an application. It is built once at startup and
// handed to everything registering routes or running queries.
type AppContext struct {
	Config   cfg.Config
	Logger   log.Logger
	Clock    clock.Clock
	Uuid     uuid.Uuid
	Sessions db_repo.SessionProvider
}

type sessionProviderKey string

// New builds the AppContext for the default database connection. The session provider is shared
// through the container of ctx if there is one, so the connection pool is only opened once.
func New(ctx context.Context, config cfg.Config, logger log.Logger, options ...db.ConnectionOption) (*AppContext, error) {
	sessions, err := ProvideSessionProvider(ctx, config, logger, DefaultConnectionName, options...)
	if err != nil {
		return nil, fmt.Errorf("can not provide session provider: %w", err)
	}

	return NewWithInterfaces(config, logger, clock.Provider, uuid.New(), sessions), nil
}

func NewWithInterfaces(config cfg.Config, logger log.Logger, clock clock.Clock, uuid uuid.Uuid, sessions db_repo.SessionProvider) *AppContext {
	return &AppContext{
		Config:   config,
		Logger:   logger,
		Clock:    clock,
		Uuid:     uuid,
		Sessions: sessions,
	}
}

func ProvideSessionProvider(ctx context.Context, config cfg.Config, logger log.Logger, name string, options ...db.ConnectionOption) (db_repo.SessionProvider, error) {
	factory := func() (db_repo.SessionProvider, error) {
		return db_repo.NewSessionProvider(ctx, config, logger, name, options...)
	}

	if ctx.Value(containerKey) == nil {
		return factory()
	}

	return Provide(ctx, sessionProviderKey(name), factory)
}
