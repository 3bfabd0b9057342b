package crud

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

type createHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]] struct {
	logger   log.Logger
	endpoint EndpointConfig[C, P, T, M]
}

func NewCreateHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, endpoint EndpointConfig[C, P, T, M]) gin.HandlerFunc {
	ch := createHandler[C, P, T, M]{
		logger:   logger,
		endpoint: endpoint,
	}

	return httpserver.CreateJsonHandler(ch)
}

func (ch createHandler[C, P, T, M]) GetInput() any {
	return new(C)
}

func (ch createHandler[C, P, T, M]) Handle(ctx context.Context, request *httpserver.Request) (*httpserver.Response, error) {
	input := request.Body.(*C)

	model, err := withService(ctx, ch.endpoint, func(service db_repo.RecordService[C, P, M]) (M, error) {
		return service.Create(ctx, *input)
	})
	if err != nil {
		return HandleErrorOnWrite(ctx, ch.logger, err)
	}

	return httpserver.NewJsonResponse(model.ToPublic(), httpserver.WithStatusCode(http.StatusCreated)), nil
}
