package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
)

func exportFixtures() []model.Reservation {
	return []model.Reservation{
		{
			ID:        "r1",
			Name:      "Haircut",
			StartDate: date(2026, time.March, 10, 9, 0),
			EndDate:   date(2026, time.March, 10, 10, 0),
			Capacity:  1,
		},
		{
			ID:        "r2",
			Name:      "Yoga class",
			StartDate: date(2026, time.March, 2, 18, 0),
			EndDate:   date(2026, time.March, 2, 19, 0),
			Capacity:  12,
			Recurrence: &model.RecurrenceRule{
				Type:       model.RecurrenceWeekly,
				DaysOfWeek: []int{1, 3},
				EndType:    model.RecurrenceEndAfter,
				EndAfter:   8,
			},
		},
	}
}

func TestExportService_ICS(t *testing.T) {
	api := newMockUpstreamAPI()
	api.reservations = exportFixtures()
	svc := NewExportService(api, NewPlannerService(), zap.NewNop())
	state := CalendarState{View: ViewMonth, Anchor: date(2026, time.March, 15, 0, 0)}

	buf, filename, err := svc.ExportICS(context.Background(), testSession(), state)
	if err != nil {
		t.Fatalf("ExportICS failed: %v", err)
	}
	if filename != "reservations-2026-03.ics" {
		t.Errorf("filename = %s", filename)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("missing VCALENDAR")
	}
	if !strings.Contains(out, "SUMMARY:Haircut") || !strings.Contains(out, "SUMMARY:Yoga class") {
		t.Error("missing event summaries")
	}
	if !strings.Contains(out, "FREQ=WEEKLY") || !strings.Contains(out, "BYDAY=MO,WE") || !strings.Contains(out, "COUNT=8") {
		t.Errorf("recurrence rule missing from:\n%s", out)
	}
}

func TestExportService_Excel(t *testing.T) {
	api := newMockUpstreamAPI()
	api.reservations = exportFixtures()
	svc := NewExportService(api, NewPlannerService(), zap.NewNop())
	state := CalendarState{View: ViewMonth, Anchor: date(2026, time.March, 15, 0, 0)}

	buf, filename, err := svc.ExportExcel(context.Background(), testSession(), state)
	if err != nil {
		t.Fatalf("ExportExcel failed: %v", err)
	}
	if filename != "reservations-2026-03.xlsx" {
		t.Errorf("filename = %s", filename)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook")
	}
}

func TestExportService_EmptyMonth(t *testing.T) {
	api := newMockUpstreamAPI()
	svc := NewExportService(api, NewPlannerService(), zap.NewNop())
	state := CalendarState{View: ViewMonth, Anchor: date(2026, time.March, 15, 0, 0)}

	if _, _, err := svc.ExportICS(context.Background(), testSession(), state); !errors.Is(err, ErrExportEmpty) {
		t.Errorf("expected ErrExportEmpty, got %v", err)
	}
}

// ── toRRule ──

func TestToRRule(t *testing.T) {
	until := date(2026, time.June, 30, 0, 0)

	cases := []struct {
		name string
		rule *model.RecurrenceRule
		want string
	}{
		{"nil", nil, ""},
		{"daily never", &model.RecurrenceRule{Type: model.RecurrenceDaily, EndType: model.RecurrenceEndNever}, "FREQ=DAILY"},
		{
			"weekly count",
			&model.RecurrenceRule{Type: model.RecurrenceWeekly, DaysOfWeek: []int{6, 0}, EndType: model.RecurrenceEndAfter, EndAfter: 4},
			"FREQ=WEEKLY;BYDAY=SA,SU;COUNT=4",
		},
		{
			"monthly until",
			&model.RecurrenceRule{Type: model.RecurrenceMonthly, EndType: model.RecurrenceEndOn, EndDate: until},
			"FREQ=MONTHLY;UNTIL=20260630T000000Z",
		},
		{"custom unexportable", &model.RecurrenceRule{Type: model.RecurrenceCustom, EndType: model.RecurrenceEndNever}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toRRule(tc.rule); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRecurrenceSummary(t *testing.T) {
	rule := &model.RecurrenceRule{
		Type:       model.RecurrenceWeekly,
		DaysOfWeek: []int{1, 5},
		EndType:    model.RecurrenceEndAfter,
		EndAfter:   10,
	}

	got := recurrenceSummary(rule)
	if !strings.Contains(got, "weekly") || !strings.Contains(got, "Mon") || !strings.Contains(got, "Fri") || !strings.Contains(got, "10 times") {
		t.Errorf("summary = %q", got)
	}

	if recurrenceSummary(nil) != "" {
		t.Error("nil rule should summarize empty")
	}
}
