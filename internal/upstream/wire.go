package upstream

import (
	"fmt"
	"time"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
)

// ── wire types ──
//
// The reservation API speaks JSON with ISO-8601 date strings. The
// recurrence object is present if and only if the reservation repeats:
// a non-repeating reservation omits the key entirely instead of
// sending a disabled rule. The encoder below owns that rule; no caller
// conditionally deletes keys.

type reservationPayload struct {
	Name       string             `json:"name"`
	StartDate  string             `json:"startDate"`
	EndDate    string             `json:"endDate"`
	IsAllDay   bool               `json:"isAllDay"`
	IsMultiDay bool               `json:"isMultiDay"`
	Capacity   int                `json:"capacity"`
	Recurrence *recurrencePayload `json:"recurrence,omitempty"`
}

type recurrencePayload struct {
	Enabled    bool    `json:"enabled"`
	Type       string  `json:"type"`
	DaysOfWeek []int   `json:"daysOfWeek,omitempty"`
	EndType    string  `json:"endType"`
	EndAfter   *int    `json:"endAfter,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
}

// reservationRecord is what the API returns. The backend's document
// store exposes the id as "_id".
type reservationRecord struct {
	ID         string             `json:"_id"`
	Name       string             `json:"name"`
	StartDate  string             `json:"startDate"`
	EndDate    string             `json:"endDate"`
	IsAllDay   bool               `json:"isAllDay"`
	IsMultiDay bool               `json:"isMultiDay"`
	Capacity   int                `json:"capacity"`
	Recurrence *recurrencePayload `json:"recurrence,omitempty"`
}

// ── encoding ──

func encodeReservation(r *model.Reservation) *reservationPayload {
	return &reservationPayload{
		Name:       r.Name,
		StartDate:  r.StartDate.Format(time.RFC3339),
		EndDate:    r.EndDate.Format(time.RFC3339),
		IsAllDay:   r.IsAllDay,
		IsMultiDay: r.IsMultiDay,
		Capacity:   r.Capacity,
		Recurrence: encodeRecurrence(r.Recurrence),
	}
}

// encodeRecurrence maps the rule variant onto the wire: nil stays
// absent, and the termination fields carry exactly what the end type
// admits — a stale EndAfter or EndDate left over from earlier form
// state never leaks into the payload.
func encodeRecurrence(rule *model.RecurrenceRule) *recurrencePayload {
	if rule == nil {
		return nil
	}

	p := &recurrencePayload{
		Enabled: true,
		Type:    string(rule.Type),
		EndType: string(rule.EndType),
	}
	if rule.Type == model.RecurrenceWeekly {
		p.DaysOfWeek = rule.DaysOfWeek
	}
	switch rule.EndType {
	case model.RecurrenceEndAfter:
		after := rule.EndAfter
		p.EndAfter = &after
	case model.RecurrenceEndOn:
		end := rule.EndDate.Format(time.RFC3339)
		p.EndDate = &end
	}
	return p
}

// ── decoding ──

func decodeReservation(rec *reservationRecord) (*model.Reservation, error) {
	start, err := time.Parse(time.RFC3339, rec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: bad startDate %q: %w", rec.ID, rec.StartDate, err)
	}
	end, err := time.Parse(time.RFC3339, rec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: bad endDate %q: %w", rec.ID, rec.EndDate, err)
	}

	rule, err := decodeRecurrence(rec.ID, rec.Recurrence)
	if err != nil {
		return nil, err
	}

	return &model.Reservation{
		ID:         rec.ID,
		Name:       rec.Name,
		StartDate:  start,
		EndDate:    end,
		IsAllDay:   rec.IsAllDay,
		IsMultiDay: rec.IsMultiDay,
		Capacity:   rec.Capacity,
		Recurrence: rule,
	}, nil
}

func decodeRecurrence(id string, p *recurrencePayload) (*model.RecurrenceRule, error) {
	if p == nil || !p.Enabled {
		return nil, nil
	}

	rule := &model.RecurrenceRule{
		Type:       model.RecurrenceType(p.Type),
		DaysOfWeek: p.DaysOfWeek,
		EndType:    model.RecurrenceEndType(p.EndType),
	}
	if p.EndAfter != nil {
		rule.EndAfter = *p.EndAfter
	}
	if p.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("reservation %s: bad recurrence endDate %q: %w", id, *p.EndDate, err)
		}
		rule.EndDate = end
	}
	return rule, nil
}
