package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// BodyLimit caps request body size. Reservation forms and guest notes
// are tiny, so the cap can be aggressive.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()

		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				if !c.Writer.Written() {
					response.Error(c, http.StatusRequestEntityTooLarge, 40013, "request body too large")
				}
				return
			}
		}
	}
}
