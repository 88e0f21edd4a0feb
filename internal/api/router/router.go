package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/api/handler"
	"github.com/denizbarcak/planvia-partner-ui/internal/api/middleware"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
)

// maxBodyBytes caps request bodies. The largest payload is a guest
// note at 2000 characters, so 64 KiB leaves plenty of headroom.
const maxBodyBytes = 64 << 10

// Setup initializes and returns the gin engine.
func Setup(cfg *config.Config, h *handler.Handler, sessions session.Store, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth module (no session required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// session-bound routes
		authorized := v1.Group("")
		authorized.Use(middleware.SessionAuth(&cfg.Session, sessions, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// calendar module
			calendar := authorized.Group("/calendar")
			{
				calendar.GET("/state", h.Calendar.GetState)
				calendar.GET("/events", h.Calendar.GetEvents)
				calendar.GET("/events/:id", h.Calendar.GetEvent)
				calendar.POST("/slot", h.Calendar.SelectSlot)
				calendar.POST("/navigate", h.Calendar.Navigate)
				calendar.POST("/view", h.Calendar.SetView)
			}

			// reservation module
			reservations := authorized.Group("/reservations")
			{
				reservations.POST("", h.Reservation.Create)
				reservations.POST("/adjust-end", h.Reservation.AdjustEnd)
				reservations.PUT("/:id", h.Reservation.Update)
				reservations.POST("/:id/delete", h.Reservation.RequestDelete)
				reservations.POST("/:id/delete/confirm", h.Reservation.ConfirmDelete)
				reservations.POST("/:id/delete/decline", h.Reservation.DeclineDelete)

				// guest notes (device-local)
				reservations.GET("/:id/note", h.Note.Get)
				reservations.PUT("/:id/note", h.Note.Put)
				reservations.DELETE("/:id/note", h.Note.Delete)
			}

			// export module
			export := authorized.Group("/export")
			{
				export.GET("/excel", h.Export.Excel)
				export.GET("/ics", h.Export.ICS)
			}
		}
	}

	return r
}
