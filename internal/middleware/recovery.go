package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/internal/logger"
)

// RecoveryMiddleware recovers from panics in handlers, logs the stack trace
// with the request's logger and answers 500 with an ErrorResponse body.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(c.Request.Context()).Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				AbortWithError(c, http.StatusInternalServerError, "internal server error", fmt.Errorf("%v", r))
			}
		}()

		c.Next()
	}
}
