package handler

import (
	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth        *AuthHandler
	Calendar    *CalendarHandler
	Reservation *ReservationHandler
	Export      *ExportHandler
	Note        *NoteHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service, sessions session.Store, cfg *config.SessionConfig) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, cfg),
		Calendar:    NewCalendarHandler(svc.Planner, svc.Event, svc.Reservation, sessions),
		Reservation: NewReservationHandler(svc.Reservation, sessions),
		Export:      NewExportHandler(svc.Export),
		Note:        NewNoteHandler(svc.Note),
	}
}
