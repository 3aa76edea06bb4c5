package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, query, status
// code, latency and client IP once the request is handled.
//
// It logs through the request-scoped logger, so request_id is included when
// RequestID() runs first. Server errors are logged at error level.
//
// Example log output:
//
//	{"level":"info","request_id":"…","method":"GET","path":"/api/v1/records","status":200,"latency_ms":3,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		l := logger.FromContext(c.Request.Context())
		ev := l.Info()
		if status >= 500 {
			ev = l.Error()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}
