package model

import "time"

// ── recurrence ──

// RecurrenceType is the repetition frequency of a recurring reservation.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
	RecurrenceCustom  RecurrenceType = "custom"
)

// Valid reports whether t is one of the known recurrence types.
func (t RecurrenceType) Valid() bool {
	switch t {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly, RecurrenceCustom:
		return true
	}
	return false
}

// RecurrenceEndType says how a recurring reservation terminates.
// Exactly one variant is active at a time.
type RecurrenceEndType string

const (
	RecurrenceEndNever RecurrenceEndType = "never"
	RecurrenceEndAfter RecurrenceEndType = "after"
	RecurrenceEndOn    RecurrenceEndType = "on"
)

// Valid reports whether t is one of the known end types.
func (t RecurrenceEndType) Valid() bool {
	switch t {
	case RecurrenceEndNever, RecurrenceEndAfter, RecurrenceEndOn:
		return true
	}
	return false
}

// RecurrenceRule describes how a reservation repeats. The rule is only
// transmitted to the backend; expanding it into concrete occurrences is
// entirely the backend's job.
//
// DaysOfWeek uses calendar weekday indices (0=Sunday .. 6=Saturday) and
// is only meaningful for weekly rules. Selection order is preserved.
// EndAfter is read only when EndType is "after", EndDate only when
// EndType is "on".
type RecurrenceRule struct {
	Type       RecurrenceType
	DaysOfWeek []int
	EndType    RecurrenceEndType
	EndAfter   int
	EndDate    time.Time
}

// ── reservation ──

// Reservation is a bookable appointment record owned by the backend.
// The partner UI only ever holds a transient copy of it.
//
// A nil Recurrence means the reservation does not repeat; the wire
// encoder omits the field entirely in that case rather than sending a
// disabled rule.
type Reservation struct {
	ID         string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	IsAllDay   bool
	IsMultiDay bool
	Capacity   int
	Recurrence *RecurrenceRule
}
