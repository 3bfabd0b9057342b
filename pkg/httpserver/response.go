package httpserver

import (
	"net/http"
)

// Don't create a response directly, use New*Response instead
type Response struct {
	Body        any
	ContentType *string // might be nil
	Header      http.Header
	StatusCode  int
}

type emptyRenderer struct{}

func (e emptyRenderer) Render(http.ResponseWriter) error {
	return nil
}

func (e emptyRenderer) WriteContentType(_ http.ResponseWriter) {
}

func NewResponse(body any, contentType string, statusCode int, header http.Header, options ...ResponseOption) *Response {
	resp := &Response{
		Body:       body,
		Header:     header,
		StatusCode: statusCode,
	}

	if contentType != "" {
		resp.ContentType = &contentType
	}

	for _, option := range options {
		option(resp)
	}

	return resp
}

func NewJsonResponse(body any, options ...ResponseOption) *Response {
	return NewResponse(body, ContentTypeJson, http.StatusOK, make(http.Header), options...)
}

func NewStatusResponse(statusCode int, options ...ResponseOption) *Response {
	var body any
	var contentType string
	// client and server errors get a small body with the status text, other codes could be
	// misinterpreted by clients if they had one
	if statusCode >= http.StatusBadRequest {
		body = http.StatusText(statusCode)
		contentType = ContentTypeText
	}

	return NewResponse(body, contentType, statusCode, make(http.Header), options...)
}

func (r *Response) AddHeader(key string, value string) {
	r.Header.Add(key, value)
}

func (r *Response) WithBody(body any) *Response {
	r.Body = body

	return r
}

type ResponseOption func(resp *Response)

func WithStatusCode(statusCode int) ResponseOption {
	return func(resp *Response) {
		resp.StatusCode = statusCode
	}
}

// HttpStatusClientWentAway is used when the client canceled the request before it could be handled.
const HttpStatusClientWentAway = 499
