package dto

import (
	"time"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
)

// ── calendar view DTOs ──

// SlotSelectRequest is a click on a calendar cell: the slot's start and
// end as reported by the grid widget.
type SlotSelectRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end"   binding:"required"`
}

// NavigateRequest moves the anchor date: "prev", "next" or "today".
type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=prev next today"`
}

// ViewRequest switches the visible grid.
type ViewRequest struct {
	View string `json:"view" binding:"required,oneof=month week day"`
}

// CalendarStateResponse is the current view state, returned by every
// endpoint that may change it.
type CalendarStateResponse struct {
	View   string    `json:"view"`
	Anchor time.Time `json:"anchor"`
}

// SlotActionResponse tells the shell what a slot click resulted in:
// either "navigate" (only the state changed) or "open_dialog" (the
// creation dialog should open, prefilled with Form).
type SlotActionResponse struct {
	Action string                `json:"action"`
	State  CalendarStateResponse `json:"state"`
	Form   *ReservationForm      `json:"form,omitempty"`
}

// EventListResponse is the formatted event list for the visible range.
type EventListResponse struct {
	Events []model.CalendarEvent `json:"events"`
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
}
