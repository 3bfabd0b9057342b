package crud

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/justtrackio/crudgen/pkg/appctx"
	"github.com/justtrackio/crudgen/pkg/db-repo"
)

// EndpointConfig binds an entity to the routes serving it. It is built once at startup and not
// changed afterwards.
type EndpointConfig[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]] struct {
	// Name of the entity, e.g. hero
	Name string
	// Path of the collection, e.g. /hero
	Path     string
	Sessions db_repo.SessionProvider
	// ServiceFactory binds a record service to the session of a single request.
	ServiceFactory func(session db_repo.Session) db_repo.RecordService[C, P, M]
}

func NewEndpointConfig[C any, P db_repo.Identifiable, T any, M db_repo.ModelPointer[T, C, P]](appCtx *appctx.AppContext, name string) EndpointConfig[C, P, T, M] {
	return EndpointConfig[C, P, T, M]{
		Name:     name,
		Path:     fmt.Sprintf("/%s", strcase.ToKebab(name)),
		Sessions: appCtx.Sessions,
		ServiceFactory: func(session db_repo.Session) db_repo.RecordService[C, P, M] {
			return db_repo.NewServiceWithInterfaces[C, P, T, M](appCtx.Logger, appCtx.Clock, appCtx.Uuid, session.Orm())
		},
	}
}

func (c EndpointConfig[C, P, T, M]) IdPath() string {
	return fmt.Sprintf("%s/:id", c.Path)
}
