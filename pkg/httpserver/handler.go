package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-contrib/location"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/imdario/mergo"
	"github.com/justtrackio/crudgen/pkg/coffin"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJson = "application/json; charset=utf-8"
)

var conform = modifiers.New()

type Request struct {
	Body     any
	ClientIp string
	Header   http.Header
	Method   string
	Params   gin.Params
	Url      *url.URL
}

type HandlerWithoutInput interface {
	Handle(requestContext context.Context, request *Request) (response *Response, err error)
}

type HandlerWithInput interface {
	HandlerWithoutInput
	GetInput() any
}

// CreateHandler creates a gin.HandlerFunc that handles the request without data binding
func CreateHandler(handler HandlerWithoutInput) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		handle(ginCtx, handler, nil, defaultErrorHandler)
	}
}

// CreateJsonHandler creates a gin.HandlerFunc that handles the request with json binding.
// The mod tags of the input are applied before it is validated.
// Example input struct from handler.GetInput():
//
//	type example struct{
//	  A string `json:"a" mod:"trim" binding:"required"`
//	}
func CreateJsonHandler(handler HandlerWithInput) gin.HandlerFunc {
	return handleWithBindingInput(handler, bindJson, defaultErrorHandler)
}

func bindJson(ginCtx *gin.Context, input any) error {
	if ginCtx.Request.Body == nil {
		return fmt.Errorf("invalid request: empty body")
	}

	if err := json.NewDecoder(ginCtx.Request.Body).Decode(input); err != nil {
		return err
	}

	if err := conform.Struct(ginCtx.Request.Context(), input); err != nil {
		return fmt.Errorf("can not apply modifiers: %w", err)
	}

	return binding.Validator.ValidateStruct(input)
}

// CreateUriHandler creates a gin.HandlerFunc that handles the request and uses the uri parameters as input binding
// Example input struct from handler.GetInput():
//
//	type example struct{
//	  Id string `uri:"id" binding:"required,uuid"`
//	}
func CreateUriHandler(handler HandlerWithInput) gin.HandlerFunc {
	return handleWithBindingInput(handler, func(ginCtx *gin.Context, input any) error {
		return ginCtx.ShouldBindUri(input)
	}, defaultErrorHandler)
}

func handleWithBindingInput(handler HandlerWithInput, bind func(ginCtx *gin.Context, input any) error, errHandler ErrorHandler) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		input := handler.GetInput()

		if err := bind(ginCtx, input); err != nil {
			handleError(ginCtx, errHandler, http.StatusBadRequest, gin.Error{
				Err:  err,
				Type: gin.ErrorTypeBind,
			})

			return
		}

		handle(ginCtx, handler, input, errHandler)
	}
}

func handle(ginCtx *gin.Context, handler HandlerWithoutInput, input any, errHandler ErrorHandler) {
	reqCtx := ginCtx.Request.Context()

	ginUrl, err := parseUrl(ginCtx)
	if err != nil {
		handleError(ginCtx, errHandler, http.StatusInternalServerError, gin.Error{
			Err:  err,
			Type: gin.ErrorTypePrivate,
		})

		return
	}

	request := &Request{
		Method:   ginCtx.Request.Method,
		Header:   ginCtx.Request.Header,
		Params:   ginCtx.Params,
		Url:      ginUrl,
		Body:     input,
		ClientIp: ginCtx.ClientIP(),
	}

	resp, err := handler.Handle(reqCtx, request)
	if err != nil {
		handleError(ginCtx, errHandler, http.StatusInternalServerError, gin.Error{
			Err:  err,
			Type: gin.ErrorTypePrivate,
		})

		return
	}

	writer, err := mkResponseBodyWriter(resp)
	if err != nil {
		handleError(ginCtx, errHandler, http.StatusInternalServerError, gin.Error{
			Err:  err,
			Type: gin.ErrorTypeRender,
		})

		return
	}

	writeResponseHeaders(ginCtx, resp)
	writer(ginCtx)
}

func parseUrl(ctx *gin.Context) (*url.URL, error) {
	ginUrl := location.Get(ctx)
	if ginUrl == nil {
		ginUrl = &url.URL{}
	}

	reqUrl := ctx.Request.URL
	if reqUrl == nil {
		reqUrl = &url.URL{}
	}

	if err := mergo.Merge(reqUrl, ginUrl); err != nil {
		return nil, fmt.Errorf("could not merge urls: %w", err)
	}

	if ctx.Request.Host != "" {
		reqUrl.Host = ctx.Request.Host
	}

	return reqUrl, nil
}

func handleError(ginCtx *gin.Context, errHandler ErrorHandler, statusCode int, ginError gin.Error) {
	//nolint:errcheck // we just want to add the error to the context and are not interested in the result
	_ = ginCtx.Error(&ginError)
	resp := errHandler(statusCode, ginError.Err)

	writer, err := mkResponseBodyWriter(resp)
	if err != nil {
		panic(errors.WithMessage(err, "Error creating writer for error handler"))
	}

	writer(ginCtx)
}

func writeResponseHeaders(ginCtx *gin.Context, resp *Response) {
	for name, values := range resp.Header {
		for _, value := range values {
			ginCtx.Header(name, value)
		}
	}
}

func mkResponseBodyWriter(resp *Response) (func(ginCtx *gin.Context), error) {
	if resp == nil {
		return nil, fmt.Errorf("the handler returned neither a response nor an error")
	}

	if resp.ContentType == nil {
		return withRecover(func(ginCtx *gin.Context) {
			ginCtx.Render(resp.StatusCode, emptyRenderer{})
		}), nil
	}

	if *resp.ContentType == ContentTypeJson {
		return withRecover(func(ginCtx *gin.Context) {
			ginCtx.JSON(resp.StatusCode, resp.Body)
		}), nil
	}

	if b, ok := resp.Body.([]byte); ok {
		return withRecover(func(ginCtx *gin.Context) {
			ginCtx.Data(resp.StatusCode, *resp.ContentType, b)
		}), nil
	}

	data, err := cast.ToStringE(resp.Body)
	if err != nil {
		return nil, err
	}

	return withRecover(func(ginCtx *gin.Context) {
		ginCtx.Data(resp.StatusCode, *resp.ContentType, []byte(data))
	}), nil
}

type ResponseBodyWriterError struct {
	Err error
}

func (e ResponseBodyWriterError) Error() string {
	return fmt.Sprintf("handler response body writer error: %s", e.Err.Error())
}

func (e ResponseBodyWriterError) Unwrap() error {
	return e.Err
}

func (e ResponseBodyWriterError) Is(err error) bool {
	_, ok := err.(ResponseBodyWriterError)

	return ok
}

func withRecover(f func(ginCtx *gin.Context)) func(ginCtx *gin.Context) {
	return func(ginCtx *gin.Context) {
		defer func() {
			err := coffin.ResolveRecovery(recover())

			if err == nil {
				return
			}

			// a broken pipe while writing the body is not an application error, the recovery
			// middleware only logs a warning for these
			panic(ResponseBodyWriterError{Err: err})
		}()

		f(ginCtx)
	}
}
