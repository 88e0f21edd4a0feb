package service

import "time"

// ── calendar view state ──

// View is the visible calendar grid.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// ValidView reports whether v names a known grid.
func ValidView(v View) bool {
	return v == ViewMonth || v == ViewWeek || v == ViewDay
}

// Slot is a user-selected (start, end) range on the calendar grid.
type Slot struct {
	Start time.Time
	End   time.Time
}

// CalendarState is the full view state: which grid is shown and which
// date it is anchored to.
type CalendarState struct {
	View   View
	Anchor time.Time
}

// Slot click outcomes.
const (
	ActionNavigate   = "navigate"
	ActionOpenDialog = "open_dialog"
)

// SlotDecision is the result of a slot click: the state to move to and
// whether the creation dialog opens.
type SlotDecision struct {
	Action string
	State  CalendarState
	Slot   *Slot
}

// PlannerService decides what calendar interactions do. It is pure
// state arithmetic: no I/O, no clock, so it is fully unit-testable
// without a rendered view.
type PlannerService interface {
	HandleSlotSelect(state CalendarState, slot Slot) SlotDecision
	Navigate(state CalendarState, direction string, now time.Time) CalendarState
	SetView(state CalendarState, view View) CalendarState
	VisibleRange(state CalendarState) (time.Time, time.Time)
}

type plannerService struct{}

// NewPlannerService creates the PlannerService.
func NewPlannerService() PlannerService {
	return plannerService{}
}

// HandleSlotSelect evaluates a slot click, in order:
//
//  1. A click in a different calendar month than the anchor only moves
//     the anchor to that day; the view stays and no dialog opens.
//  2. In month view a same-month click drills down to week view on that
//     day. The month grid is an overview; it never opens the dialog.
//  3. In week or day view a same-month click opens the creation dialog
//     with the selected slot.
func (plannerService) HandleSlotSelect(state CalendarState, slot Slot) SlotDecision {
	day := startOfDay(slot.Start)

	if !sameMonth(day, state.Anchor) {
		return SlotDecision{
			Action: ActionNavigate,
			State:  CalendarState{View: state.View, Anchor: day},
		}
	}

	if state.View == ViewMonth {
		return SlotDecision{
			Action: ActionNavigate,
			State:  CalendarState{View: ViewWeek, Anchor: day},
		}
	}

	s := slot
	return SlotDecision{
		Action: ActionOpenDialog,
		State:  state,
		Slot:   &s,
	}
}

// Navigate steps the anchor by one unit of the current view, or jumps
// to now for "today".
func (plannerService) Navigate(state CalendarState, direction string, now time.Time) CalendarState {
	if direction == "today" {
		return CalendarState{View: state.View, Anchor: startOfDay(now)}
	}

	step := 1
	if direction == "prev" {
		step = -1
	}

	anchor := state.Anchor
	switch state.View {
	case ViewWeek:
		anchor = anchor.AddDate(0, 0, 7*step)
	case ViewDay:
		anchor = anchor.AddDate(0, 0, step)
	default:
		anchor = addMonth(anchor, step)
	}
	return CalendarState{View: state.View, Anchor: anchor}
}

// addMonth steps the anchor by whole months. The day is clamped to the
// target month's length instead of letting a day-31 anchor overflow
// into the month after: prev from March 31 lands on February 28, not
// back in March.
func addMonth(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// SetView switches the grid without moving the anchor.
func (plannerService) SetView(state CalendarState, view View) CalendarState {
	return CalendarState{View: view, Anchor: state.Anchor}
}

// VisibleRange returns the half-open interval [start, end) to load
// events for. By convention every view loads the anchor's full
// calendar month, so switching between grids never refetches.
func (plannerService) VisibleRange(state CalendarState) (time.Time, time.Time) {
	a := state.Anchor
	start := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, a.Location())
	return start, start.AddDate(0, 1, 0)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
