package crud

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

type readHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]] struct {
	logger   log.Logger
	endpoint EndpointConfig[C, P, T, M]
}

func NewReadHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, endpoint EndpointConfig[C, P, T, M]) gin.HandlerFunc {
	rh := readHandler[C, P, T, M]{
		logger:   logger,
		endpoint: endpoint,
	}

	return httpserver.CreateUriHandler(rh)
}

func (rh readHandler[C, P, T, M]) GetInput() any {
	return &IdInput{}
}

func (rh readHandler[C, P, T, M]) Handle(ctx context.Context, request *httpserver.Request) (*httpserver.Response, error) {
	id, err := parseId(request)
	if err != nil {
		return invalidId(err), nil
	}

	logger := rh.logger.WithFields(log.Fields{
		"entity_id": id.String(),
	})

	model, err := withService(ctx, rh.endpoint, func(service db_repo.RecordService[C, P, M]) (M, error) {
		model, found, err := service.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if !found {
			return nil, db_repo.NewRecordNotFoundError(id, rh.endpoint.Name, gorm.ErrRecordNotFound)
		}

		return model, nil
	})
	if err != nil {
		return HandleErrorOnRead(ctx, logger, err)
	}

	return httpserver.NewJsonResponse(model.ToPublic()), nil
}
