package httpserver_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
	logMocks "github.com/justtrackio/crudgen/pkg/log/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type loggingMiddlewareTestSuite struct {
	suite.Suite

	logger *logMocks.Logger
	fields log.Fields
}

func TestLoggingMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(loggingMiddlewareTestSuite))
}

func (s *loggingMiddlewareTestSuite) SetupTest() {
	s.logger = logMocks.NewLogger(s.T())
	s.logger.EXPECT().WithFields(mock.AnythingOfType("log.Fields")).Run(func(args mock.Arguments) {
		s.fields = args.Get(0).(log.Fields)
	}).Return(s.logger)
}

func (s *loggingMiddlewareTestSuite) serve(settings httpserver.LoggingSettings, body string, handler gin.HandlerFunc) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpserver.NewLoggingMiddlewareWithInterfaces(s.logger, settings, clock.NewFakeClock()))
	r.POST("/hero/:id", handler)

	req := httptest.NewRequest(http.MethodPost, "/hero/42?verbose=1", strings.NewReader(body))
	req.Header.Set("X-Request-Id", "req-1")

	r.ServeHTTP(httptest.NewRecorder(), req)
}

func (s *loggingMiddlewareTestSuite) TestSuccess() {
	s.logger.EXPECT().Info(mock.Anything, "%s %s %s", []any{"POST", "/hero/42", "HTTP/1.1"})

	s.serve(httpserver.LoggingSettings{}, `{"name":"Batman"}`, func(ginCtx *gin.Context) {
		ginCtx.Status(http.StatusOK)
	})

	s.Equal("/hero/:id", s.fields["request_path_raw"])
	s.Equal("verbose=1", s.fields["request_query"])
	s.Equal(http.StatusOK, s.fields["status"])
	s.Equal(0.0, s.fields["request_time"])
	s.NotContains(s.fields, "request_body")
}

func (s *loggingMiddlewareTestSuite) TestRequestBody() {
	s.logger.EXPECT().Info(mock.Anything, "%s %s %s", []any{"POST", "/hero/42", "HTTP/1.1"})

	var received string
	s.serve(httpserver.LoggingSettings{RequestBody: true}, `{"name":"Batman"}`, func(ginCtx *gin.Context) {
		data, _ := ginCtx.GetRawData()
		received = string(data)
		ginCtx.Status(http.StatusOK)
	})

	s.Equal(`{"name":"Batman"}`, s.fields["request_body"])
	s.Equal(`{"name":"Batman"}`, received)
}

func (s *loggingMiddlewareTestSuite) TestBindError() {
	s.logger.EXPECT().Warn(mock.Anything, "%s %s %s - bind error: %s", []any{"POST", "/hero/42", "HTTP/1.1", "failed to read body"})

	s.serve(httpserver.LoggingSettings{}, "", func(ginCtx *gin.Context) {
		_ = ginCtx.Error(&gin.Error{
			Err:  fmt.Errorf("failed to read body"),
			Type: gin.ErrorTypeBind,
		})
		ginCtx.Status(http.StatusBadRequest)
	})
}

func (s *loggingMiddlewareTestSuite) TestClientError() {
	s.logger.EXPECT().Warn(mock.Anything, "%s %s %s: %s", []any{"POST", "/hero/42", "HTTP/1.1", "not allowed"})

	s.serve(httpserver.LoggingSettings{}, "", func(ginCtx *gin.Context) {
		_ = ginCtx.Error(fmt.Errorf("not allowed"))
		ginCtx.Status(http.StatusForbidden)
	})
}

func (s *loggingMiddlewareTestSuite) TestRequestCanceled() {
	s.logger.EXPECT().Info(mock.Anything, "%s %s %s - request canceled: %s", []any{"POST", "/hero/42", "HTTP/1.1", "context canceled"})

	s.serve(httpserver.LoggingSettings{}, "", func(ginCtx *gin.Context) {
		_ = ginCtx.Error(context.Canceled)
		ginCtx.Status(http.StatusInternalServerError)
	})
}

func (s *loggingMiddlewareTestSuite) TestConnectionError() {
	s.logger.EXPECT().Info(mock.Anything, "%s %s %s - connection error: %s", []any{"POST", "/hero/42", "HTTP/1.1", "unexpected EOF"})

	s.serve(httpserver.LoggingSettings{}, "", func(ginCtx *gin.Context) {
		_ = ginCtx.Error(io.ErrUnexpectedEOF)
		ginCtx.Status(http.StatusInternalServerError)
	})
}

func (s *loggingMiddlewareTestSuite) TestServerError() {
	err := fmt.Errorf("database is gone")
	s.logger.EXPECT().Error(mock.Anything, "%s %s %s: %w", []any{"POST", "/hero/42", "HTTP/1.1", err})

	s.serve(httpserver.LoggingSettings{}, "", func(ginCtx *gin.Context) {
		_ = ginCtx.Error(err)
		ginCtx.Status(http.StatusInternalServerError)
	})
}
