package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// AuthHandler serves login, registration and logout for partners.
type AuthHandler struct {
	authSvc service.AuthService
	cfg     *config.SessionConfig
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService, cfg *config.SessionConfig) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cfg: cfg}
}

// Login authenticates against the upstream API and opens a session.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid login payload")
		return
	}

	sess, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			response.Unauthorized(c, 11001, "invalid email or password")
			return
		}
		response.BadGateway(c, 11002, "login service unavailable")
		return
	}

	h.setSessionCookie(c, sess.ID, int(h.cfg.TTL.Seconds()))
	response.OK(c, gin.H{"view": sess.View, "anchor": sess.Anchor})
}

// Register forwards a new partner registration upstream.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid registration payload")
		return
	}

	if err := h.authSvc.Register(c.Request.Context(), &req); err != nil {
		var vErr *upstream.ValidationError
		if errors.As(err, &vErr) {
			msg := vErr.Detail
			if msg == "" {
				msg = "registration rejected"
			}
			response.BadRequest(c, 11003, msg)
			return
		}
		response.BadGateway(c, 11002, "registration service unavailable")
		return
	}

	response.Created(c, nil)
}

// Logout destroys the session and clears the cookie.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sess); err != nil {
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.OK(c, nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, value, maxAge, "/", "", h.cfg.CookieSecure, true)
}
