package crud

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/inflection"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

type listHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]] struct {
	logger   log.Logger
	endpoint EndpointConfig[C, P, T, M]
}

func NewListHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, endpoint EndpointConfig[C, P, T, M]) gin.HandlerFunc {
	lh := listHandler[C, P, T, M]{
		logger:   logger,
		endpoint: endpoint,
	}

	return httpserver.CreateHandler(lh)
}

func (lh listHandler[C, P, T, M]) Handle(ctx context.Context, _ *httpserver.Request) (*httpserver.Response, error) {
	models, err := withService(ctx, lh.endpoint, func(service db_repo.RecordService[C, P, M]) ([]M, error) {
		return service.List(ctx)
	})
	if err != nil {
		return HandleErrorOnRead(ctx, lh.logger, err)
	}

	lh.logger.Debug(ctx, "listed %d %s", len(models), inflection.Plural(lh.endpoint.Name))

	return httpserver.NewJsonResponse(toPublic[C, P](models)), nil
}
