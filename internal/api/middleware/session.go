package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// SessionKey is the gin context key the authenticated session is stored
// under.
const SessionKey = "session"

// SessionAuth resolves the session cookie against the store and injects
// the session into the request context. A missing or expired session
// ends the request with 401; the shell redirects to login on any 401.
func SessionAuth(cfg *config.SessionConfig, store session.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || id == "" {
			response.Unauthorized(c, 10002, "not signed in")
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.Error("session lookup failed", zap.Error(err), zap.String("request_id", c.GetString(RequestIDKey)))
			}
			response.Unauthorized(c, 10002, "session expired")
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}
