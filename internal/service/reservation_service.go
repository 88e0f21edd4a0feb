package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/repository"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
)

// ── dialog validation errors ──
//
// These are detected before any network call; a form that trips one of
// them never reaches the reservation API.

var (
	ErrNameRequired             = errors.New("reservation name must not be empty")
	ErrRecurrenceType           = errors.New("unknown recurrence type")
	ErrRecurrenceEndType        = errors.New("unknown recurrence end type")
	ErrWeekdayRequired          = errors.New("weekly recurrence needs at least one weekday")
	ErrRecurrenceEndRequired    = errors.New("recurrence end date is required")
	ErrRecurrenceEndBeforeStart = errors.New("recurrence end date precedes the start date")
	ErrDeleteNotArmed           = errors.New("no delete pending for this reservation")
	ErrDeleteTokenMismatch      = errors.New("delete confirmation token does not match")
)

// endSnapStep is how far an invalid end time is pushed past the start,
// and the increment of the dialog's end-time nudge buttons.
const endSnapStep = 30 * time.Minute

// ReservationService implements the creation/edit dialog semantics:
// slot prefill, validation, normalization, payload assembly and the
// two-step delete flow.
type ReservationService interface {
	FormFromSlot(slot Slot) *dto.ReservationForm
	Create(ctx context.Context, sess *session.Session, form *dto.ReservationForm) (*dto.ReservationResponse, error)
	Update(ctx context.Context, sess *session.Session, id string, form *dto.ReservationForm) (*dto.ReservationResponse, error)
	RequestDelete(sess *session.Session, id string) *dto.DeleteRequestResponse
	ConfirmDelete(ctx context.Context, sess *session.Session, id, token string) error
	DeclineDelete(sess *session.Session)
}

type reservationService struct {
	api    upstream.ReservationAPI
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReservationService creates a ReservationService.
func NewReservationService(api upstream.ReservationAPI, repo *repository.Repository, logger *zap.Logger) ReservationService {
	return &reservationService{api: api, repo: repo, logger: logger}
}

// FormFromSlot prefills the creation dialog from a selected slot:
// capacity 1, no recurrence, and the weekly weekday preselected to the
// slot's own day so enabling recurrence starts from a valid state.
func (s *reservationService) FormFromSlot(slot Slot) *dto.ReservationForm {
	return &dto.ReservationForm{
		StartDate: slot.Start,
		EndDate:   slot.End,
		Capacity:  1,
		Recurrence: &dto.RecurrenceForm{
			Enabled:    false,
			Type:       string(model.RecurrenceWeekly),
			DaysOfWeek: []int{int(slot.Start.Weekday())},
			EndType:    string(model.RecurrenceEndNever),
			EndAfter:   1,
		},
	}
}

// Create validates the form and posts a new reservation.
func (s *reservationService) Create(ctx context.Context, sess *session.Session, form *dto.ReservationForm) (*dto.ReservationResponse, error) {
	reservation, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	created, err := s.api.Create(ctx, sess, reservation)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		zap.String("id", created.ID),
		zap.Time("start", created.StartDate),
	)
	return toReservationResponse(created), nil
}

// Update validates the form and replaces an existing reservation.
func (s *reservationService) Update(ctx context.Context, sess *session.Session, id string, form *dto.ReservationForm) (*dto.ReservationResponse, error) {
	reservation, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	updated, err := s.api.Update(ctx, sess, id, reservation)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation updated", zap.String("id", id))
	return toReservationResponse(updated), nil
}

// RequestDelete arms the two-step delete flow. Nothing is sent
// upstream yet; the returned token must come back via ConfirmDelete.
// Arming a second reservation replaces any earlier pending delete.
func (s *reservationService) RequestDelete(sess *session.Session, id string) *dto.DeleteRequestResponse {
	token := uuid.New().String()
	sess.PendingDelete = &session.PendingDelete{
		ReservationID: id,
		Token:         token,
		RequestedAt:   time.Now(),
	}
	return &dto.DeleteRequestResponse{
		ReservationID: id,
		ConfirmToken:  token,
	}
}

// ConfirmDelete issues the actual DELETE if the token matches the
// pending request. The token is single-use: it is cleared before the
// upstream call so a double-confirm cannot delete twice.
func (s *reservationService) ConfirmDelete(ctx context.Context, sess *session.Session, id, token string) error {
	pending := sess.PendingDelete
	if pending == nil || pending.ReservationID != id {
		return ErrDeleteNotArmed
	}
	if pending.Token != token {
		return ErrDeleteTokenMismatch
	}
	sess.PendingDelete = nil

	if err := s.api.Delete(ctx, sess, id); err != nil {
		return err
	}

	// Best-effort cleanup of the device-local note; an orphan note is
	// harmless.
	if err := s.repo.Note.Delete(ctx, id); err != nil {
		s.logger.Warn("deleting guest note failed", zap.String("reservation_id", id), zap.Error(err))
	}

	s.logger.Info("reservation deleted", zap.String("id", id))
	return nil
}

// DeclineDelete disarms a pending delete; the edit dialog stays open.
func (s *reservationService) DeclineDelete(sess *session.Session) {
	sess.PendingDelete = nil
}

// AdjustEnd nudges the end time by the given number of minutes,
// clamped so the end never precedes the start: a result at or before
// the start snaps to exactly start + 30 minutes.
func AdjustEnd(start, end time.Time, minutes int) time.Time {
	adjusted := end.Add(time.Duration(minutes) * time.Minute)
	if !adjusted.After(start) {
		return start.Add(endSnapStep)
	}
	return adjusted
}

// normalizeForm turns a dialog submission into a reservation ready for
// the wire, applying the dialog's invariants:
//
//   - name is required after trimming
//   - capacity is floored to 1
//   - an end at or before the start snaps forward to start + 30 min
//   - all-day reservations use the 00:00 / 23:59 sentinel times
//   - the recurrence object exists iff the toggle was enabled
func normalizeForm(form *dto.ReservationForm) (*model.Reservation, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	capacity := form.Capacity
	if capacity < 1 {
		capacity = 1
	}

	start, end := form.StartDate, form.EndDate
	if !end.After(start) {
		end = start.Add(endSnapStep)
	}
	if form.IsAllDay {
		start = startOfDay(start)
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 0, 0, end.Location())
	}

	rule, err := normalizeRecurrence(form.Recurrence, start)
	if err != nil {
		return nil, err
	}

	return &model.Reservation{
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		IsAllDay:   form.IsAllDay,
		IsMultiDay: form.IsMultiDay,
		Capacity:   capacity,
		Recurrence: rule,
	}, nil
}

// normalizeRecurrence validates the recurrence section. A disabled or
// absent section yields nil — the whole object disappears from the
// payload no matter what stale sub-fields the form still carried.
func normalizeRecurrence(form *dto.RecurrenceForm, start time.Time) (*model.RecurrenceRule, error) {
	if form == nil || !form.Enabled {
		return nil, nil
	}

	rtype := model.RecurrenceType(form.Type)
	if !rtype.Valid() {
		return nil, ErrRecurrenceType
	}
	endType := model.RecurrenceEndType(form.EndType)
	if !endType.Valid() {
		return nil, ErrRecurrenceEndType
	}

	rule := &model.RecurrenceRule{Type: rtype, EndType: endType}

	if rtype == model.RecurrenceWeekly {
		days := dedupWeekdays(form.DaysOfWeek)
		if len(days) == 0 {
			return nil, ErrWeekdayRequired
		}
		rule.DaysOfWeek = days
	}

	switch endType {
	case model.RecurrenceEndAfter:
		rule.EndAfter = form.EndAfter
		if rule.EndAfter < 1 {
			rule.EndAfter = 1
		}
	case model.RecurrenceEndOn:
		if form.EndDate == nil {
			return nil, ErrRecurrenceEndRequired
		}
		if form.EndDate.Before(start) {
			return nil, ErrRecurrenceEndBeforeStart
		}
		rule.EndDate = *form.EndDate
	}

	return rule, nil
}

// dedupWeekdays drops out-of-range and repeated indices while keeping
// the partner's selection order.
func dedupWeekdays(days []int) []int {
	seen := make(map[int]bool, 7)
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func toReservationResponse(r *model.Reservation) *dto.ReservationResponse {
	resp := &dto.ReservationResponse{
		ID:         r.ID,
		Name:       r.Name,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		IsAllDay:   r.IsAllDay,
		IsMultiDay: r.IsMultiDay,
		Capacity:   r.Capacity,
	}
	if r.Recurrence != nil {
		resp.Recurrence = &dto.RecurrenceForm{
			Enabled:    true,
			Type:       string(r.Recurrence.Type),
			DaysOfWeek: r.Recurrence.DaysOfWeek,
			EndType:    string(r.Recurrence.EndType),
			EndAfter:   r.Recurrence.EndAfter,
		}
		if r.Recurrence.EndType == model.RecurrenceEndOn {
			end := r.Recurrence.EndDate
			resp.Recurrence.EndDate = &end
		}
	}
	return resp
}
