package httpserver

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

const HealthCheckPath = "/health"

// buildHealthCheckHandler answers 200 while healthy reports true and 503 afterwards, so load
// balancers stop routing to a server which is draining.
func buildHealthCheckHandler(healthy *atomic.Bool) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		if !healthy.Load() {
			ginCtx.JSON(http.StatusServiceUnavailable, gin.H{})

			return
		}

		ginCtx.JSON(http.StatusOK, gin.H{})
	}
}
