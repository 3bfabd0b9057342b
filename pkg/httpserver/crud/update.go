package crud

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

type updateHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]] struct {
	logger   log.Logger
	endpoint EndpointConfig[C, P, T, M]
}

func NewUpdateHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, endpoint EndpointConfig[C, P, T, M]) gin.HandlerFunc {
	uh := updateHandler[C, P, T, M]{
		logger:   logger,
		endpoint: endpoint,
	}

	return httpserver.CreateJsonHandler(uh)
}

func (uh updateHandler[C, P, T, M]) GetInput() any {
	return new(P)
}

func (uh updateHandler[C, P, T, M]) Handle(ctx context.Context, request *httpserver.Request) (*httpserver.Response, error) {
	input := request.Body.(*P)

	logger := uh.logger.WithFields(log.Fields{
		"entity_id": (*input).GetId().String(),
	})

	model, err := withService(ctx, uh.endpoint, func(service db_repo.RecordService[C, P, M]) (M, error) {
		return service.Update(ctx, *input)
	})
	if err != nil {
		return HandleErrorOnWrite(ctx, logger, err)
	}

	return httpserver.NewJsonResponse(model.ToPublic()), nil
}
