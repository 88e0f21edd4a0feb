package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
)

// ErrExportEmpty is returned when the anchor month has nothing to
// export.
var ErrExportEmpty = errors.New("no reservations in the selected month")

// ExportService writes the anchor month's reservations as an Excel
// workbook or an iCalendar file. Both return a buffer plus a suggested
// filename; the handler sets the response headers.
type ExportService interface {
	ExportExcel(ctx context.Context, sess *session.Session, state CalendarState) (*bytes.Buffer, string, error)
	ExportICS(ctx context.Context, sess *session.Session, state CalendarState) (*bytes.Buffer, string, error)
}

type exportService struct {
	api     upstream.ReservationAPI
	planner PlannerService
	logger  *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(api upstream.ReservationAPI, planner PlannerService, logger *zap.Logger) ExportService {
	return &exportService{api: api, planner: planner, logger: logger}
}

// ── Excel ──

var excelHeader = []string{"Name", "Start", "End", "All day", "Multi day", "Capacity", "Repeats"}

// ExportExcel writes one row per reservation, ordered as the API
// returned them.
func (s *exportService) ExportExcel(ctx context.Context, sess *session.Session, state CalendarState) (*bytes.Buffer, string, error) {
	reservations, start, err := s.load(ctx, sess, state)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reservations"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range excelHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("write header: %w", err)
		}
	}

	for row, r := range reservations {
		values := []interface{}{
			r.Name,
			r.StartDate.Format("2006-01-02 15:04"),
			r.EndDate.Format("2006-01-02 15:04"),
			yesNo(r.IsAllDay),
			yesNo(r.IsMultiDay),
			r.Capacity,
			recurrenceSummary(r.Recurrence),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("excel export failed", zap.Error(err))
		return nil, "", fmt.Errorf("generate workbook: %w", err)
	}

	return buf, fmt.Sprintf("reservations-%s.xlsx", start.Format("2006-01")), nil
}

// ── iCalendar ──

var icsWeekdays = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// ExportICS writes a VCALENDAR with one VEVENT per reservation. Weekly,
// daily, monthly and yearly rules map onto RRULE; custom rules have no
// RFC 5545 equivalent and export as single events.
func (s *exportService) ExportICS(ctx context.Context, sess *session.Session, state CalendarState) (*bytes.Buffer, string, error) {
	reservations, start, err := s.load(ctx, sess, state)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//PlanVia//Partner Calendar//EN")

	now := time.Now()
	for _, r := range reservations {
		event := cal.AddEvent(r.ID + "@planvia")
		event.SetDtStampTime(now)
		event.SetSummary(r.Name)
		if r.IsAllDay {
			event.SetAllDayStartAt(r.StartDate)
			event.SetAllDayEndAt(r.EndDate.AddDate(0, 0, 1))
		} else {
			event.SetStartAt(r.StartDate)
			event.SetEndAt(r.EndDate)
		}
		event.SetDescription(fmt.Sprintf("Capacity: %d", r.Capacity))

		if rrule := toRRule(r.Recurrence); rrule != "" {
			event.AddRrule(rrule)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("reservations-%s.ics", start.Format("2006-01")), nil
}

// ── helpers ──

func (s *exportService) load(ctx context.Context, sess *session.Session, state CalendarState) ([]model.Reservation, time.Time, error) {
	start, end := s.planner.VisibleRange(state)

	reservations, err := s.api.List(ctx, sess, start, end)
	if err != nil {
		return nil, start, err
	}
	if len(reservations) == 0 {
		return nil, start, ErrExportEmpty
	}
	return reservations, start, nil
}

// toRRule maps a recurrence rule onto an RFC 5545 RRULE value, or ""
// when the rule cannot be represented.
func toRRule(rule *model.RecurrenceRule) string {
	if rule == nil {
		return ""
	}

	var freq string
	switch rule.Type {
	case model.RecurrenceDaily:
		freq = "DAILY"
	case model.RecurrenceWeekly:
		freq = "WEEKLY"
	case model.RecurrenceMonthly:
		freq = "MONTHLY"
	case model.RecurrenceYearly:
		freq = "YEARLY"
	default:
		return ""
	}

	parts := []string{"FREQ=" + freq}

	if rule.Type == model.RecurrenceWeekly && len(rule.DaysOfWeek) > 0 {
		days := make([]string, 0, len(rule.DaysOfWeek))
		for _, d := range rule.DaysOfWeek {
			if d >= 0 && d <= 6 {
				days = append(days, icsWeekdays[d])
			}
		}
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}

	switch rule.EndType {
	case model.RecurrenceEndAfter:
		parts = append(parts, fmt.Sprintf("COUNT=%d", rule.EndAfter))
	case model.RecurrenceEndOn:
		parts = append(parts, "UNTIL="+rule.EndDate.UTC().Format("20060102T150405Z"))
	}

	return strings.Join(parts, ";")
}

func recurrenceSummary(rule *model.RecurrenceRule) string {
	if rule == nil {
		return ""
	}

	summary := string(rule.Type)
	if rule.Type == model.RecurrenceWeekly && len(rule.DaysOfWeek) > 0 {
		names := make([]string, 0, len(rule.DaysOfWeek))
		for _, d := range rule.DaysOfWeek {
			if d >= 0 && d <= 6 {
				names = append(names, time.Weekday(d).String()[:3])
			}
		}
		summary += " (" + strings.Join(names, ", ") + ")"
	}

	switch rule.EndType {
	case model.RecurrenceEndAfter:
		summary += fmt.Sprintf(", %d times", rule.EndAfter)
	case model.RecurrenceEndOn:
		summary += ", until " + rule.EndDate.Format("2006-01-02")
	}
	return summary
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
