package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/internal/domain/dto"
)

// ErrorHandler turns errors attached with c.Error into a 500 ErrorResponse,
// unless a handler already wrote a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse("internal server error", c.Errors.Last().Err))
}

// AbortWithError stops the chain and writes status with an ErrorResponse body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
