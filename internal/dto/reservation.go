package dto

import "time"

// ── reservation dialog DTOs ──

// RecurrenceForm mirrors the dialog's recurrence section. Sub-fields
// may hold stale values from earlier toggling; only the service decides
// what actually reaches the wire.
type RecurrenceForm struct {
	Enabled    bool       `json:"enabled"`
	Type       string     `json:"type"`
	DaysOfWeek []int      `json:"daysOfWeek"`
	EndType    string     `json:"endType"`
	EndAfter   int        `json:"endAfter"`
	EndDate    *time.Time `json:"endDate"`
}

// ReservationForm is the creation/edit dialog submission.
type ReservationForm struct {
	Name       string          `json:"name"`
	StartDate  time.Time       `json:"startDate" binding:"required"`
	EndDate    time.Time       `json:"endDate"   binding:"required"`
	IsAllDay   bool            `json:"isAllDay"`
	IsMultiDay bool            `json:"isMultiDay"`
	Capacity   int             `json:"capacity"`
	Recurrence *RecurrenceForm `json:"recurrence"`
}

// ReservationResponse is a persisted reservation echoed back to the
// shell after a create or update.
type ReservationResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	IsAllDay   bool            `json:"isAllDay"`
	IsMultiDay bool            `json:"isMultiDay"`
	Capacity   int             `json:"capacity"`
	Recurrence *RecurrenceForm `json:"recurrence,omitempty"`
}

// AdjustEndRequest is one press of the dialog's end-time nudge
// buttons: the current slot plus the nudge in minutes.
type AdjustEndRequest struct {
	Start   time.Time `json:"start"   binding:"required"`
	End     time.Time `json:"end"     binding:"required"`
	Minutes int       `json:"minutes" binding:"required"`
}

// AdjustEndResponse is the resulting end time, clamped so it never
// precedes the start.
type AdjustEndResponse struct {
	End time.Time `json:"end"`
}

// DeleteRequestResponse arms the two-step delete flow: the shell shows
// the confirmation modal and posts the token back to confirm.
type DeleteRequestResponse struct {
	ReservationID string `json:"reservation_id"`
	ConfirmToken  string `json:"confirm_token"`
}

// ConfirmDeleteRequest carries the confirmation token back.
type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" binding:"required"`
}
