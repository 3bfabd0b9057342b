package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	logMocks "github.com/justtrackio/crudgen/pkg/log/mocks"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func serveWithRecovery(t *testing.T, handler gin.HandlerFunc) (*logMocks.Logger, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	loggerMock := logMocks.NewLoggerMock(logMocks.WithMockAll, logMocks.WithTestingT(t))

	r := gin.New()
	r.Use(httpserver.RecoveryWithLogger(loggerMock))
	r.GET("/some/route", handler)

	httpRecorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/some/route", nil)

	assert.NotPanics(t, func() {
		r.ServeHTTP(httpRecorder, req)
	})

	return loggerMock, httpRecorder
}

func TestRecoveryWithLogger_Nil(t *testing.T) {
	loggerMock, recorder := serveWithRecovery(t, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	loggerMock.AssertNumberOfCalls(t, "Warn", 0)
	loggerMock.AssertNumberOfCalls(t, "Error", 0)
}

func TestRecoveryWithLogger_Error(t *testing.T) {
	loggerMock, recorder := serveWithRecovery(t, func(c *gin.Context) {
		panic(http.ErrServerClosed)
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	loggerMock.AssertNumberOfCalls(t, "Warn", 0)
	loggerMock.AssertNumberOfCalls(t, "Error", 1)
}

func TestRecoveryWithLogger_String(t *testing.T) {
	loggerMock, recorder := serveWithRecovery(t, func(c *gin.Context) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	loggerMock.AssertNumberOfCalls(t, "Error", 1)
}

func TestRecoveryWithLogger_ResponseBodyWriterConnectionError(t *testing.T) {
	loggerMock, _ := serveWithRecovery(t, func(c *gin.Context) {
		panic(httpserver.ResponseBodyWriterError{Err: unix.EPIPE})
	})

	loggerMock.AssertNumberOfCalls(t, "Warn", 1)
	loggerMock.AssertNumberOfCalls(t, "Error", 0)
}

func TestRecoveryWithLogger_ResponseBodyWriterOtherError(t *testing.T) {
	loggerMock, recorder := serveWithRecovery(t, func(c *gin.Context) {
		panic(httpserver.ResponseBodyWriterError{Err: unix.EINVAL})
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	loggerMock.AssertNumberOfCalls(t, "Warn", 0)
	loggerMock.AssertNumberOfCalls(t, "Error", 1)
}
