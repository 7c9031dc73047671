package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthcare-file-viewer/internal/observability"
)

// RequestLogger logs every request through the structured logger once the
// handler chain has finished.
func RequestLogger(log *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		for _, e := range c.Errors {
			if status >= 500 {
				log.Error(e.Err, "request error")
			} else {
				log.Warn(e.Err, "request error")
			}
		}
		log.Request(c.Request.Method, path, status, time.Since(start), c.ClientIP())
	}
}

// BodyLimit caps request bodies at maxBytes.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
