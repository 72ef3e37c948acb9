package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logger emits one line per request. Session routes carry the session id so
// a single report can be followed across its mutation calls.
func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		rid, _ := c.Get(RequestIDHeader)
		ridStr, _ := rid.(string)
		evt := l.Info().
			Str("request_id", ridStr).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency)
		if sid := c.Param("id"); sid != "" {
			evt = evt.Str("session_id", sid)
		}
		evt.Msg("request")
	}
}
