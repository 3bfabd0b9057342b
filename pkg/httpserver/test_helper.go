package httpserver

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-contrib/location"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
)

type HttpBody interface {
	string | []byte
}

type HttpTestOption func(request *http.Request)

func WithHttpTestHeader(key string, value string) HttpTestOption {
	return func(request *http.Request) {
		request.Header.Set(key, value)
	}
}

// HttpTest routes a single request to handler through the same Definitions a Definer returns.
// Requests with a body are sent as json unless an option sets another content type.
func HttpTest[Body HttpBody](method, path, requestPath string, body Body, handler gin.HandlerFunc, options ...HttpTestOption) *httptest.ResponseRecorder {
	gin.SetMode(gin.ReleaseMode)

	d := &Definitions{}
	d.Handle(method, path, handler)

	router := gin.New()
	router.Use(location.Default())
	buildRouter(d, router)

	request := httptest.NewRequest(method, requestPath, io.NopCloser(bytes.NewReader([]byte(body))))
	if len(body) > 0 {
		request.Header.Set(headers.ContentType, ContentTypeJson)
	}

	for _, opt := range options {
		opt(request)
	}

	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	return response
}
