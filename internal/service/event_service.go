package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
)

// ErrEventNotFound is returned when an event id is not in the visible
// range.
var ErrEventNotFound = errors.New("event not found in the visible range")

// EventService loads the visible range from the reservation API and
// projects it into calendar events.
type EventService interface {
	LoadRange(ctx context.Context, sess *session.Session, state CalendarState) (*dto.EventListResponse, error)
	Find(ctx context.Context, sess *session.Session, state CalendarState, id string) (*model.CalendarEvent, error)
}

type eventService struct {
	api     upstream.ReservationAPI
	planner PlannerService
	logger  *zap.Logger
}

// NewEventService creates an EventService.
func NewEventService(api upstream.ReservationAPI, planner PlannerService, logger *zap.Logger) EventService {
	return &eventService{api: api, planner: planner, logger: logger}
}

// LoadRange fetches the anchor month and formats it. The event list is
// recomputed in full on every call; nothing is cached between loads.
func (s *eventService) LoadRange(ctx context.Context, sess *session.Session, state CalendarState) (*dto.EventListResponse, error) {
	start, end := s.planner.VisibleRange(state)

	reservations, err := s.api.List(ctx, sess, start, end)
	if err != nil {
		if !errors.Is(err, upstream.ErrUnauthorized) {
			s.logger.Warn("loading reservations failed",
				zap.Time("start", start),
				zap.Time("end", end),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return &dto.EventListResponse{
		Events: FormatEvents(reservations, time.Now()),
		Start:  start,
		End:    end,
	}, nil
}

// Find returns the single event with the given id from the visible
// range, for the read-only details view.
func (s *eventService) Find(ctx context.Context, sess *session.Session, state CalendarState, id string) (*model.CalendarEvent, error) {
	list, err := s.LoadRange(ctx, sess, state)
	if err != nil {
		return nil, err
	}
	for i := range list.Events {
		if list.Events[i].ID == id {
			return &list.Events[i], nil
		}
	}
	return nil, ErrEventNotFound
}

// FormatEvents projects raw reservations into calendar events. It is
// pure: the past flag is fixed against the now argument and is not
// re-evaluated later, output order is input order, and no dedup or
// sorting happens — layout is the grid widget's job.
func FormatEvents(reservations []model.Reservation, now time.Time) []model.CalendarEvent {
	events := make([]model.CalendarEvent, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		events = append(events, model.CalendarEvent{
			ID:     r.ID,
			Title:  r.Name,
			Start:  r.StartDate,
			End:    r.EndDate,
			AllDay: r.IsAllDay,
			Resource: model.EventResource{
				Capacity:   r.Capacity,
				IsPast:     r.EndDate.Before(now),
				IsMultiDay: r.IsMultiDay,
				Recurrence: toEventRecurrence(r.Recurrence),
			},
		})
	}
	return events
}

// toEventRecurrence projects a recurrence rule for display. The same
// variant discipline as the wire encoder applies: absent rule stays
// absent, and the termination fields carry only what the end type
// admits.
func toEventRecurrence(rule *model.RecurrenceRule) *model.EventRecurrence {
	if rule == nil {
		return nil
	}
	er := &model.EventRecurrence{Type: rule.Type, EndType: rule.EndType}
	if rule.Type == model.RecurrenceWeekly {
		er.DaysOfWeek = rule.DaysOfWeek
	}
	switch rule.EndType {
	case model.RecurrenceEndAfter:
		er.EndAfter = rule.EndAfter
	case model.RecurrenceEndOn:
		end := rule.EndDate
		er.EndDate = &end
	}
	return er
}
