package crud

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

// IdInput is the uri binding of the routes addressing a single record. The id is parsed
// by parseId, which accepts any letter case.
type IdInput struct {
	Id string `uri:"id" binding:"required"`
}

// AddCrudHandlers registers create, list, read, update and delete for one entity:
//
//	POST   /hero      create
//	GET    /hero      list
//	GET    /hero/:id  read
//	PATCH  /hero      update, the id is part of the body
//	DELETE /hero/:id  delete
func AddCrudHandlers[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, d *httpserver.Definitions, endpoint EndpointConfig[C, P, T, M]) {
	logger = logger.WithChannel("crud").WithFields(log.Fields{
		"entity": endpoint.Name,
	})

	AddCreateHandler(logger, d, endpoint)
	AddListHandler(logger, d, endpoint)
	AddReadHandler(logger, d, endpoint)
	AddUpdateHandler(logger, d, endpoint)
	AddDeleteHandler(logger, d, endpoint)
}

func AddCreateHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, d *httpserver.Definitions, endpoint EndpointConfig[C, P, T, M]) {
	d.POST(endpoint.Path, NewCreateHandler(logger, endpoint))
}

func AddListHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, d *httpserver.Definitions, endpoint EndpointConfig[C, P, T, M]) {
	d.GET(endpoint.Path, NewListHandler(logger, endpoint))
}

func AddReadHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, d *httpserver.Definitions, endpoint EndpointConfig[C, P, T, M]) {
	d.GET(endpoint.IdPath(), NewReadHandler(logger, endpoint))
}

func AddUpdateHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, d *httpserver.Definitions, endpoint EndpointConfig[C, P, T, M]) {
	d.PATCH(endpoint.Path, NewUpdateHandler(logger, endpoint))
}

func AddDeleteHandler[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](logger log.Logger, d *httpserver.Definitions, endpoint EndpointConfig[C, P, T, M]) {
	d.DELETE(endpoint.IdPath(), NewDeleteHandler(logger, endpoint))
}

// withService runs fn with a record service bound to a fresh session. The session is committed if
// fn succeeds and rolled back otherwise.
func withService[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P], R any](ctx context.Context, endpoint EndpointConfig[C, P, T, M], fn func(service db_repo.RecordService[C, P, M]) (R, error)) (R, error) {
	return db_repo.WithSession(ctx, endpoint.Sessions, func(session db_repo.Session) (R, error) {
		return fn(endpoint.ServiceFactory(session))
	})
}

func parseId(request *httpserver.Request) (uuid.UUID, error) {
	input := request.Body.(*IdInput)

	id, err := uuid.Parse(input.Id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("can not parse id %s: %w", input.Id, err)
	}

	return id, nil
}

// invalidId answers like a failed binding: HTTP 400 with the error in the body.
func invalidId(err error) *httpserver.Response {
	return httpserver.GetErrorHandler()(http.StatusBadRequest, err)
}

func toPublic[C any, P db_repo.Identifiable, M db_repo.Model[C, P]](models []M) []P {
	result := make([]P, len(models))

	for i, model := range models {
		result[i] = model.ToPublic()
	}

	return result
}
