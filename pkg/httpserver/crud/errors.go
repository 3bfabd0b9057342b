package crud

import (
	"context"
	"net/http"

	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/justtrackio/crudgen/pkg/exec"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
)

const DetailModelNotFound = "Model not found"

type ErrorDetail struct {
	Detail string `json:"detail"`
}

// HandleErrorOnRead handles errors for read operations.
//   - canceled request -> HTTP 499
//   - db_repo.RecordNotFoundError -> HTTP 404
//
// Everything else is returned and ends up as HTTP 500.
func HandleErrorOnRead(ctx context.Context, logger log.Logger, err error) (*httpserver.Response, error) {
	if exec.IsRequestCanceled(err) {
		logger.Info(ctx, "read model(s) aborted: %s", err.Error())

		return httpserver.NewStatusResponse(httpserver.HttpStatusClientWentAway), nil
	}

	if db_repo.IsRecordNotFoundError(err) {
		logger.Info(ctx, "failed to read model: %s", err.Error())

		return notFound(), nil
	}

	return nil, err
}

// HandleErrorOnWrite handles errors for write operations.
//   - db_repo.RecordNotFoundError -> HTTP 404
//
// Everything else, including duplicate entries and canceled requests, is returned and ends up as HTTP 500.
func HandleErrorOnWrite(ctx context.Context, logger log.Logger, err error) (*httpserver.Response, error) {
	if db_repo.IsRecordNotFoundError(err) {
		logger.Warn(ctx, "failed to fetch model: %s", err.Error())

		return notFound(), nil
	}

	return nil, err
}

func notFound() *httpserver.Response {
	return httpserver.NewJsonResponse(ErrorDetail{Detail: DetailModelNotFound}, httpserver.WithStatusCode(http.StatusNotFound))
}
