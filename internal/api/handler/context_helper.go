package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/internal/api/middleware"
	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// MustGetSession safely extracts the session the auth middleware
// injected. If it is missing, a 401 is written and ok is false; callers
// should return immediately.
func MustGetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(middleware.SessionKey)
	if !exists {
		response.Unauthorized(c, 10002, "not signed in")
		return nil, false
	}
	sess, ok := v.(*session.Session)
	if !ok || sess == nil {
		response.Unauthorized(c, 10002, "not signed in")
		return nil, false
	}
	return sess, true
}

// calendarStateOf reads the calendar view state stored in the session.
func calendarStateOf(sess *session.Session) service.CalendarState {
	view := service.View(sess.View)
	if !service.ValidView(view) {
		view = service.ViewMonth
	}
	return service.CalendarState{View: view, Anchor: sess.Anchor}
}

// applyState writes a calendar state back onto the session. The caller
// still has to Save the session for it to survive the request.
func applyState(sess *session.Session, state service.CalendarState) {
	sess.View = string(state.View)
	sess.Anchor = state.Anchor
}

func toStateResponse(state service.CalendarState) dto.CalendarStateResponse {
	return dto.CalendarStateResponse{
		View:   string(state.View),
		Anchor: state.Anchor,
	}
}

// handleUpstreamError maps reservation API failures onto response
// envelopes. Every 401 from upstream surfaces as a 401 here so the
// shell drops the dead session and shows the login page.
func handleUpstreamError(c *gin.Context, err error) {
	var vErr *upstream.ValidationError
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		response.Unauthorized(c, 10002, "session expired")
	case errors.Is(err, upstream.ErrNotFound):
		response.NotFound(c, 14001, "reservation not found")
	case errors.As(err, &vErr):
		msg := vErr.Detail
		if msg == "" {
			msg = "reservation rejected by the booking service"
		}
		response.BadRequest(c, 14002, msg)
	default:
		response.BadGateway(c, 14003, "reservation service unavailable")
	}
}
