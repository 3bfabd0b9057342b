package main

import (
	"context"
	"fmt"

	"github.com/justtrackio/crudgen/pkg/appctx"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/db"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/httpserver/crud"
	"github.com/justtrackio/crudgen/pkg/log"
)

func Define(ctx context.Context, config cfg.Config, logger log.Logger) (*httpserver.Definitions, error) {
	appCtx, err := appctx.New(ctx, config, logger, db.WithMigrationFs(migrations))
	if err != nil {
		return nil, fmt.Errorf("can not create app context: %w", err)
	}

	d := &httpserver.Definitions{}
	crud.AddCrudHandlers(logger, d, crud.NewEndpointConfig[HeroCreate, HeroPublic, Hero](appCtx, "hero"))

	return d, nil
}
