package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/api/middleware"
	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock services
// ═══════════════════════════════════════════════════════════

// ── mock AuthService ──

type mockAuthService struct {
	loginResult *session.Session
	loginErr    error
	registerErr error
	logoutErr   error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*session.Session, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) error {
	return m.registerErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *session.Session) error {
	return m.logoutErr
}

// ── mock EventService ──

type mockEventService struct {
	loadResult *dto.EventListResponse
	loadErr    error
	findResult *model.CalendarEvent
	findErr    error
}

func (m *mockEventService) LoadRange(_ context.Context, _ *session.Session, _ service.CalendarState) (*dto.EventListResponse, error) {
	return m.loadResult, m.loadErr
}
func (m *mockEventService) Find(_ context.Context, _ *session.Session, _ service.CalendarState, _ string) (*model.CalendarEvent, error) {
	return m.findResult, m.findErr
}

// ── mock ReservationService ──

type mockReservationService struct {
	form          *dto.ReservationForm
	createResult  *dto.ReservationResponse
	createErr     error
	updateResult  *dto.ReservationResponse
	updateErr     error
	pendingResult *dto.DeleteRequestResponse
	confirmErr    error
	declined      bool
}

func (m *mockReservationService) FormFromSlot(_ service.Slot) *dto.ReservationForm {
	return m.form
}
func (m *mockReservationService) Create(_ context.Context, _ *session.Session, _ *dto.ReservationForm) (*dto.ReservationResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockReservationService) Update(_ context.Context, _ *session.Session, _ string, _ *dto.ReservationForm) (*dto.ReservationResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockReservationService) RequestDelete(_ *session.Session, _ string) *dto.DeleteRequestResponse {
	return m.pendingResult
}
func (m *mockReservationService) ConfirmDelete(_ context.Context, _ *session.Session, _, _ string) error {
	return m.confirmErr
}
func (m *mockReservationService) DeclineDelete(_ *session.Session) {
	m.declined = true
}

// ═══════════════════════════════════════════════════════════
// Helpers
// ═══════════════════════════════════════════════════════════

func sessionCfg() *config.SessionConfig {
	return &config.SessionConfig{CookieName: "planvia_session", TTL: time.Hour}
}

// withSession injects a session the way the auth middleware does.
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionKey, sess)
		c.Next()
	}
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v\n%s", err, w.Body.String())
	}
	return env
}

func testDate(d, h int) time.Time {
	return time.Date(2026, time.March, d, h, 0, 0, 0, time.UTC)
}
