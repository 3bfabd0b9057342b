package crud

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

type deleteHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]] struct {
	logger   log.Logger
	endpoint EndpointConfig[C, P, T, M]
}

func NewDeleteHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, endpoint EndpointConfig[C, P, T, M]) gin.HandlerFunc {
	dh := deleteHandler[C, P, T, M]{
		logger:   logger,
		endpoint: endpoint,
	}

	return httpserver.CreateUriHandler(dh)
}

func (dh deleteHandler[C, P, T, M]) GetInput() any {
	return &IdInput{}
}

func (dh deleteHandler[C, P, T, M]) Handle(ctx context.Context, request *httpserver.Request) (*httpserver.Response, error) {
	id, err := parseId(request)
	if err != nil {
		return invalidId(err), nil
	}

	logger := dh.logger.WithFields(log.Fields{
		"entity_id": id.String(),
	})

	model, err := withService(ctx, dh.endpoint, func(service db_repo.RecordService[C, P, M]) (M, error) {
		return service.Delete(ctx, id)
	})
	if err != nil {
		return HandleErrorOnWrite(ctx, logger, err)
	}

	return httpserver.NewJsonResponse(model.ToPublic()), nil
}
