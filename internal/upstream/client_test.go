package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(&config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
	return client, srv
}

func testSess() *session.Session {
	return session.New("token-xyz", time.Now())
}

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

// ── auth header and query ──

func TestClient_List_SendsBearerAndRange(t *testing.T) {
	var gotAuth, gotStart, gotEnd string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotStart = r.URL.Query().Get("start")
		gotEnd = r.URL.Query().Get("end")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	start := utc(2026, time.March, 1, 0, 0)
	end := utc(2026, time.April, 1, 0, 0)
	if _, err := client.List(context.Background(), testSess(), start, end); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if gotAuth != "Bearer token-xyz" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotStart != "2026-03-01T00:00:00Z" || gotEnd != "2026-04-01T00:00:00Z" {
		t.Errorf("range query = %q .. %q", gotStart, gotEnd)
	}
}

func TestClient_List_SkipsMalformedRecords(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"good","name":"Haircut","startDate":"2026-03-10T09:00:00Z","endDate":"2026-03-10T10:00:00Z","capacity":1},
			{"_id":"bad","name":"Broken","startDate":"not-a-date","endDate":"2026-03-10T10:00:00Z","capacity":1}
		]`))
	})

	got, err := client.List(context.Background(), testSess(), utc(2026, time.March, 1, 0, 0), utc(2026, time.April, 1, 0, 0))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "good" {
		t.Errorf("got %+v", got)
	}
}

// ── error mapping ──

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"401 unauthorized", http.StatusUnauthorized, func(t *testing.T, err error) {
			if !errors.Is(err, ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		}},
		{"404 not found", http.StatusNotFound, func(t *testing.T, err error) {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		}},
		{"422 validation", http.StatusUnprocessableEntity, func(t *testing.T, err error) {
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		}},
		{"503 operation error", http.StatusServiceUnavailable, func(t *testing.T, err error) {
			var opErr *OperationError
			if !errors.As(err, &opErr) {
				t.Errorf("expected OperationError, got %v", err)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tc.status)
			})
			_, err := client.List(context.Background(), testSess(), utc(2026, time.March, 1, 0, 0), utc(2026, time.April, 1, 0, 0))
			if err == nil {
				t.Fatal("expected an error")
			}
			tc.check(t, err)
		})
	}
}

// ── wire shape ──

func TestClient_Create_RecurrenceWireShape(t *testing.T) {
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"res-1","name":"Yoga","startDate":"2026-03-02T18:00:00Z","endDate":"2026-03-02T19:00:00Z","capacity":12,"recurrence":{"enabled":true,"type":"weekly","daysOfWeek":[1],"endType":"after","endAfter":4}}`))
	})

	_, err := client.Create(context.Background(), testSess(), &model.Reservation{
		Name:      "Yoga",
		StartDate: utc(2026, time.March, 2, 18, 0),
		EndDate:   utc(2026, time.March, 2, 19, 0),
		Capacity:  12,
		Recurrence: &model.RecurrenceRule{
			Type:       model.RecurrenceWeekly,
			DaysOfWeek: []int{1},
			EndType:    model.RecurrenceEndAfter,
			EndAfter:   4,
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var rec map[string]json.RawMessage
	if err := json.Unmarshal(body["recurrence"], &rec); err != nil {
		t.Fatalf("recurrence missing: %v", err)
	}
	if _, has := rec["endAfter"]; !has {
		t.Error("endAfter should be present for a count-terminated rule")
	}
	// a count-terminated rule never carries an end date key
	if _, has := rec["endDate"]; has {
		t.Error("endDate key must be absent for a count-terminated rule")
	}
}

func TestClient_Create_NoRecurrenceOmitsKey(t *testing.T) {
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"res-1","name":"Haircut","startDate":"2026-03-10T09:00:00Z","endDate":"2026-03-10T10:00:00Z","capacity":1}`))
	})

	_, err := client.Create(context.Background(), testSess(), &model.Reservation{
		Name:      "Haircut",
		StartDate: utc(2026, time.March, 10, 9, 0),
		EndDate:   utc(2026, time.March, 10, 10, 0),
		Capacity:  1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, has := body["recurrence"]; has {
		t.Error("non-repeating reservation must omit the recurrence key entirely")
	}
}

func TestClient_Delete(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Delete(context.Background(), testSess(), "res-9"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/reservations/res-9" {
		t.Errorf("%s %s", gotMethod, gotPath)
	}
}
