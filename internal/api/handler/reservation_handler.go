package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// ReservationHandler serves the creation/edit dialog submissions and
// the two-step delete flow.
type ReservationHandler struct {
	resSvc   service.ReservationService
	sessions session.Store
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(resSvc service.ReservationService, sessions session.Store) *ReservationHandler {
	return &ReservationHandler{resSvc: resSvc, sessions: sessions}
}

// Create submits the creation dialog.
// POST /api/v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var form dto.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, 10001, "invalid reservation payload")
		return
	}

	created, err := h.resSvc.Create(c.Request.Context(), sess, &form)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.Created(c, created)
}

// Update submits the edit dialog for an existing reservation.
// PUT /api/v1/reservations/:id
func (h *ReservationHandler) Update(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var form dto.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, 10001, "invalid reservation payload")
		return
	}

	updated, err := h.resSvc.Update(c.Request.Context(), sess, c.Param("id"), &form)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.OK(c, updated)
}

// AdjustEnd applies the dialog's end-time nudge buttons. The clamp
// lives in the service so the dialog cannot produce an end before the
// start no matter how often the minus button is pressed.
// POST /api/v1/reservations/adjust-end
func (h *ReservationHandler) AdjustEnd(c *gin.Context) {
	if _, ok := MustGetSession(c); !ok {
		return
	}

	var req dto.AdjustEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid adjust payload")
		return
	}

	response.OK(c, dto.AdjustEndResponse{End: service.AdjustEnd(req.Start, req.End, req.Minutes)})
}

// RequestDelete arms the delete confirmation for a reservation.
// Nothing is removed until the token comes back via ConfirmDelete.
// POST /api/v1/reservations/:id/delete
func (h *ReservationHandler) RequestDelete(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	pending := h.resSvc.RequestDelete(sess, c.Param("id"))

	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, pending)
}

// ConfirmDelete completes an armed delete.
// POST /api/v1/reservations/:id/delete/confirm
func (h *ReservationHandler) ConfirmDelete(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.ConfirmDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "confirm_token is required")
		return
	}

	err := h.resSvc.ConfirmDelete(c.Request.Context(), sess, c.Param("id"), req.ConfirmToken)

	// The token is consumed even when the upstream delete fails, so the
	// session is saved either way.
	if saveErr := h.sessions.Save(c.Request.Context(), sess); saveErr != nil {
		response.InternalError(c)
		return
	}

	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeclineDelete disarms a pending delete; the dialog stays open.
// POST /api/v1/reservations/:id/delete/decline
func (h *ReservationHandler) DeclineDelete(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	h.resSvc.DeclineDelete(sess)

	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// handleReservationError maps dialog validation errors to 400s before
// falling back to the shared upstream mapping.
func (h *ReservationHandler) handleReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrRecurrenceType),
		errors.Is(err, service.ErrRecurrenceEndType),
		errors.Is(err, service.ErrWeekdayRequired),
		errors.Is(err, service.ErrRecurrenceEndRequired),
		errors.Is(err, service.ErrRecurrenceEndBeforeStart):
		response.BadRequest(c, 14004, err.Error())
	case errors.Is(err, service.ErrDeleteNotArmed),
		errors.Is(err, service.ErrDeleteTokenMismatch):
		response.BadRequest(c, 14005, err.Error())
	default:
		handleUpstreamError(c, err)
	}
}
