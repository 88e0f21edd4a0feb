package upstream

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
)

// Create posts a new reservation and returns the persisted record with
// its backend-assigned id.
func (c *Client) Create(ctx context.Context, sess *session.Session, r *model.Reservation) (*model.Reservation, error) {
	var rec reservationRecord
	if err := c.do(ctx, sess, "create reservation", http.MethodPost, "/reservations", nil, encodeReservation(r), &rec); err != nil {
		return nil, err
	}
	created, err := decodeReservation(&rec)
	if err != nil {
		return nil, &OperationError{Op: "create reservation", Err: err}
	}
	return created, nil
}

// List fetches every reservation overlapping the half-open interval
// [start, end). Callers pass a full calendar month's span by
// convention. Records with unparseable dates are skipped rather than
// failing the whole load.
func (c *Client) List(ctx context.Context, sess *session.Session, start, end time.Time) ([]model.Reservation, error) {
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))

	var recs []reservationRecord
	if err := c.do(ctx, sess, "list reservations", http.MethodGet, "/reservations", query, nil, &recs); err != nil {
		return nil, err
	}

	out := make([]model.Reservation, 0, len(recs))
	for i := range recs {
		r, err := decodeReservation(&recs[i])
		if err != nil {
			c.logger.Warn("skipping malformed reservation record", zap.Error(err))
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

// Update replaces the reservation with the given id.
func (c *Client) Update(ctx context.Context, sess *session.Session, id string, r *model.Reservation) (*model.Reservation, error) {
	var rec reservationRecord
	if err := c.do(ctx, sess, "update reservation", http.MethodPut, "/reservations/"+url.PathEscape(id), nil, encodeReservation(r), &rec); err != nil {
		return nil, err
	}
	updated, err := decodeReservation(&rec)
	if err != nil {
		return nil, &OperationError{Op: "update reservation", Err: err}
	}
	return updated, nil
}

// Delete removes the reservation with the given id.
func (c *Client) Delete(ctx context.Context, sess *session.Session, id string) error {
	return c.do(ctx, sess, "delete reservation", http.MethodDelete, "/reservations/"+url.PathEscape(id), nil, nil, nil)
}
