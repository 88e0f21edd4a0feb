// Package session holds the server-side browser session: the bearer
// credential for the upstream reservation API plus the calendar view
// state. The session object is passed explicitly to everything that
// talks upstream; nothing reads credentials from ambient storage.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// PendingDelete is the armed half of the two-step delete flow: the
// partner clicked delete on a reservation and the UI is waiting for an
// explicit confirmation carrying this token.
type PendingDelete struct {
	ReservationID string    `json:"reservation_id"`
	Token         string    `json:"token"`
	RequestedAt   time.Time `json:"requested_at"`
}

// Session is one partner's browser session.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	CreatedAt   time.Time `json:"created_at"`

	// Calendar view state: which grid is shown and which date it is
	// anchored to. Kept here so the UI survives a page reload.
	View   string    `json:"view"`
	Anchor time.Time `json:"anchor"`

	PendingDelete *PendingDelete `json:"pending_delete,omitempty"`
}

// New creates a session for a freshly logged-in partner with the
// default calendar state (month view anchored at now).
func New(accessToken string, now time.Time) *Session {
	return &Session{
		ID:          uuid.New().String(),
		AccessToken: accessToken,
		CreatedAt:   now,
		View:        "month",
		Anchor:      now,
	}
}

// Store persists sessions between requests.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
