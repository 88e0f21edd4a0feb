package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// CalendarHandler serves the calendar view: event loading, slot
// selection, navigation and view switching. View state lives in the
// session so a page reload comes back where the partner left off.
type CalendarHandler struct {
	plannerSvc service.PlannerService
	eventSvc   service.EventService
	resSvc     service.ReservationService
	sessions   session.Store
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(plannerSvc service.PlannerService, eventSvc service.EventService, resSvc service.ReservationService, sessions session.Store) *CalendarHandler {
	return &CalendarHandler{
		plannerSvc: plannerSvc,
		eventSvc:   eventSvc,
		resSvc:     resSvc,
		sessions:   sessions,
	}
}

// GetState returns the current view state.
// GET /api/v1/calendar/state
func (h *CalendarHandler) GetState(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}
	response.OK(c, toStateResponse(calendarStateOf(sess)))
}

// GetEvents loads and formats the visible range. When the upstream
// list fails for any reason other than an expired session, the grid
// still renders: the response degrades to an empty list plus a toast
// message instead of an error page.
// GET /api/v1/calendar/events
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}
	state := calendarStateOf(sess)

	list, err := h.eventSvc.LoadRange(c.Request.Context(), sess, state)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			response.Unauthorized(c, 10002, "session expired")
			return
		}
		start, end := h.plannerSvc.VisibleRange(state)
		response.Notice(c, 15001, "reservations could not be loaded", &dto.EventListResponse{
			Events: []model.CalendarEvent{},
			Start:  start,
			End:    end,
		})
		return
	}

	response.OK(c, list)
}

// SelectSlot reports a click on a calendar cell. Depending on the
// current state the click either navigates or opens the creation
// dialog; the returned action tells the shell which.
// POST /api/v1/calendar/slot
func (h *CalendarHandler) SelectSlot(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.SlotSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid slot payload")
		return
	}

	decision := h.plannerSvc.HandleSlotSelect(calendarStateOf(sess), service.Slot{Start: req.Start, End: req.End})

	applyState(sess, decision.State)
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		response.InternalError(c)
		return
	}

	resp := dto.SlotActionResponse{
		Action: decision.Action,
		State:  toStateResponse(decision.State),
	}
	if decision.Action == service.ActionOpenDialog && decision.Slot != nil {
		resp.Form = h.resSvc.FormFromSlot(*decision.Slot)
	}
	response.OK(c, resp)
}

// Navigate steps the anchor date by the current view's unit.
// POST /api/v1/calendar/navigate
func (h *CalendarHandler) Navigate(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "direction must be prev, next or today")
		return
	}

	state := h.plannerSvc.Navigate(calendarStateOf(sess), req.Direction, time.Now())

	applyState(sess, state)
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, toStateResponse(state))
}

// SetView switches the visible grid without moving the anchor.
// POST /api/v1/calendar/view
func (h *CalendarHandler) SetView(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "view must be month, week or day")
		return
	}

	state := h.plannerSvc.SetView(calendarStateOf(sess), service.View(req.View))

	applyState(sess, state)
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, toStateResponse(state))
}

// GetEvent returns one event from the visible range for the read-only
// details view.
// GET /api/v1/calendar/events/:id
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	event, err := h.eventSvc.Find(c.Request.Context(), sess, calendarStateOf(sess), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 15002, "event not found")
			return
		}
		handleUpstreamError(c, err)
		return
	}

	response.OK(c, event)
}
