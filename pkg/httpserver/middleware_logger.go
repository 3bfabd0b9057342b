package httpserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/exec"
	"github.com/justtrackio/crudgen/pkg/log"
)

type logCall struct {
	logger   log.Logger
	settings LoggingSettings
	fields   log.Fields
}

func LoggingMiddleware(logger log.Logger, settings LoggingSettings) gin.HandlerFunc {
	logger = logger.WithChannel("http")

	return NewLoggingMiddlewareWithInterfaces(logger, settings, clock.Provider)
}

func NewLoggingMiddlewareWithInterfaces(logger log.Logger, settings LoggingSettings, clock clock.Clock) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		start := clock.Now()

		ctx := ginCtx.Request.Context()

		if requestId := ginCtx.Request.Header.Get("X-Request-Id"); requestId != "" {
			ctx = log.AppendContextFields(ctx, map[string]any{
				"request_id": requestId,
			})
		}

		ginCtx.Request = ginCtx.Request.WithContext(ctx)

		lc := newLogCall(logger, settings)
		lc.prepare(ginCtx)

		ginCtx.Next()

		lc.finalize(ginCtx, clock.Since(start).Seconds())
	}
}

func newLogCall(logger log.Logger, settings LoggingSettings) *logCall {
	return &logCall{
		logger:   logger,
		settings: settings,
		fields:   log.Fields{},
	}
}

func (lc *logCall) prepare(ginCtx *gin.Context) {
	req := ginCtx.Request

	lc.fields["client_ip"] = ginCtx.ClientIP()
	lc.fields["host"] = req.Host
	lc.fields["protocol"] = req.Proto
	lc.fields["request_method"] = req.Method
	lc.fields["request_path"] = req.URL.Path
	lc.fields["request_path_raw"] = getPathRaw(ginCtx)
	lc.fields["request_query"] = req.URL.RawQuery
	lc.fields["request_user_agent"] = req.UserAgent()

	if !lc.settings.RequestBody || req.Body == nil {
		return
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		lc.logger.Warn(req.Context(), "can not read request body: %s", err.Error())

		return
	}

	// restore the body so the handler can read it
	req.Body = io.NopCloser(bytes.NewBuffer(buf))
	lc.fields["request_body"] = string(buf)
}

func (lc *logCall) finalize(ginCtx *gin.Context, requestTimeSeconds float64) {
	status := ginCtx.Writer.Status()

	// these fields can only be added after all handlers have finished
	lc.fields["bytes"] = ginCtx.Writer.Size()
	lc.fields["request_time"] = requestTimeSeconds
	lc.fields["status"] = status

	ctx := ginCtx.Request.Context()
	logger := lc.logger.WithFields(lc.fields)
	method, path, proto := lc.fields["request_method"], lc.fields["request_path"], lc.fields["protocol"]

	if len(ginCtx.Errors) == 0 {
		logger.Info(ctx, "%s %s %s", method, path, proto)

		return
	}

	for _, e := range ginCtx.Errors {
		switch {
		case exec.IsRequestCanceled(e):
			logger.Info(ctx, "%s %s %s - request canceled: %s", method, path, proto, e.Error())
		case exec.IsConnectionError(e):
			logger.Info(ctx, "%s %s %s - connection error: %s", method, path, proto, e.Error())
		case e.IsType(gin.ErrorTypeBind):
			logger.Warn(ctx, "%s %s %s - bind error: %s", method, path, proto, e.Err.Error())
		case e.IsType(gin.ErrorTypeRender):
			logger.Warn(ctx, "%s %s %s - render error: %s", method, path, proto, e.Err.Error())
		case status < http.StatusInternalServerError:
			logger.Warn(ctx, "%s %s %s: %s", method, path, proto, e.Err.Error())
		default:
			logger.Error(ctx, "%s %s %s: %w", method, path, proto, e.Err)
		}
	}
}

func getPathRaw(ginCtx *gin.Context) string {
	path := ginCtx.Request.URL.Path

	for i := range ginCtx.Params {
		p := ginCtx.Params[i]
		k := fmt.Sprintf(":%s", p.Key)
		path = strings.Replace(path, p.Value, k, 1)
	}

	return path
}
