package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

// NoteHandler serves the device-local guest notes.
type NoteHandler struct {
	noteSvc service.NoteService
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// Get loads the note for a reservation.
// GET /api/v1/reservations/:id/note
func (h *NoteHandler) Get(c *gin.Context) {
	if _, ok := MustGetSession(c); !ok {
		return
	}

	note, err := h.noteSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			response.NotFound(c, 17001, "no note for this reservation")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, note)
}

// Put creates or replaces the note for a reservation.
// PUT /api/v1/reservations/:id/note
func (h *NoteHandler) Put(c *gin.Context) {
	if _, ok := MustGetSession(c); !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "note body is required and capped at 2000 characters")
		return
	}

	note, err := h.noteSvc.Set(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, note)
}

// Delete removes the note for a reservation.
// DELETE /api/v1/reservations/:id/note
func (h *NoteHandler) Delete(c *gin.Context) {
	if _, ok := MustGetSession(c); !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
