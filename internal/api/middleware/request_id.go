package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// requestIDMaxLen caps the inbound X-Request-ID so an oversized header
// cannot be injected into every log line.
const requestIDMaxLen = 64

// RequestID tags every request with an id for log correlation. An
// incoming X-Request-ID within the length cap is trusted so upstream
// proxies can thread their own ids through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" || len(id) > requestIDMaxLen {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
