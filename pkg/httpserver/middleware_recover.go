package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/exec"
	"github.com/justtrackio/crudgen/pkg/log"
)

func RecoveryWithLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			err := recover()
			ctx := c.Request.Context()

			switch rval := err.(type) {
			case nil:
				return
			case error:
				if errors.Is(rval, ResponseBodyWriterError{}) && exec.IsConnectionError(rval) {
					logger.Warn(ctx, "connection error: %s", rval.Error())

					return
				}

				logger.Error(ctx, "%w", rval)
			case string:
				logger.Error(ctx, "%s", rval)
			default:
				logger.Error(ctx, "unknown panic: %v", rval)
			}

			c.AbortWithStatus(http.StatusInternalServerError)
		}()

		c.Next()
	}
}
