package model

import "time"

// CalendarEvent is the display projection of a Reservation used by the
// calendar grid. Events are recomputed on every load of the visible
// range and have no lifecycle of their own.
type CalendarEvent struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	AllDay   bool          `json:"allDay"`
	Resource EventResource `json:"resource"`
}

// EventResource carries the reservation attributes the grid renderer
// needs beyond start/end. IsPast is fixed at formatting time; an event
// list formatted once does not become past in place, a fresh load does
// that.
type EventResource struct {
	Capacity   int              `json:"capacity"`
	IsPast     bool             `json:"isPast"`
	IsMultiDay bool             `json:"isMultiDay"`
	Recurrence *EventRecurrence `json:"recurrence,omitempty"`
}

// EventRecurrence is the display projection of a RecurrenceRule. Like
// the wire payload it carries only the termination field its end type
// admits, so a count-terminated rule never shows an endDate key.
type EventRecurrence struct {
	Type       RecurrenceType    `json:"type"`
	DaysOfWeek []int             `json:"daysOfWeek,omitempty"`
	EndType    RecurrenceEndType `json:"endType"`
	EndAfter   int               `json:"endAfter,omitempty"`
	EndDate    *time.Time        `json:"endDate,omitempty"`
}
