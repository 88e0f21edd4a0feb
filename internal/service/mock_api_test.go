package service

import (
	"context"
	"fmt"
	"time"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
)

// ── mock upstream API ──

// apiCall records one call made against the mock upstream.
type apiCall struct {
	op string
	id string
}

type mockUpstreamAPI struct {
	calls []apiCall

	reservations []model.Reservation
	listErr      error

	created   []*model.Reservation
	createErr error

	updated   map[string]*model.Reservation
	updateErr error

	deleted   []string
	deleteErr error

	loginToken  string
	loginErr    error
	registerErr error
}

func newMockUpstreamAPI() *mockUpstreamAPI {
	return &mockUpstreamAPI{updated: make(map[string]*model.Reservation)}
}

func (m *mockUpstreamAPI) List(_ context.Context, _ *session.Session, _, _ time.Time) ([]model.Reservation, error) {
	m.calls = append(m.calls, apiCall{op: "list"})
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.reservations, nil
}

func (m *mockUpstreamAPI) Create(_ context.Context, _ *session.Session, r *model.Reservation) (*model.Reservation, error) {
	m.calls = append(m.calls, apiCall{op: "create"})
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *r
	created.ID = fmt.Sprintf("res-%03d", len(m.created)+1)
	m.created = append(m.created, &created)
	return &created, nil
}

func (m *mockUpstreamAPI) Update(_ context.Context, _ *session.Session, id string, r *model.Reservation) (*model.Reservation, error) {
	m.calls = append(m.calls, apiCall{op: "update", id: id})
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	updated := *r
	updated.ID = id
	m.updated[id] = &updated
	return &updated, nil
}

func (m *mockUpstreamAPI) Delete(_ context.Context, _ *session.Session, id string) error {
	m.calls = append(m.calls, apiCall{op: "delete", id: id})
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockUpstreamAPI) Login(_ context.Context, _, _ string) (*upstream.TokenResponse, error) {
	m.calls = append(m.calls, apiCall{op: "login"})
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &upstream.TokenResponse{AccessToken: m.loginToken}, nil
}

func (m *mockUpstreamAPI) Register(_ context.Context, _ *upstream.RegisterRequest) error {
	m.calls = append(m.calls, apiCall{op: "register"})
	return m.registerErr
}

// callOps lists the operations hit, in order.
func (m *mockUpstreamAPI) callOps() []string {
	ops := make([]string, len(m.calls))
	for i, c := range m.calls {
		ops[i] = c.op
	}
	return ops
}
