package service

import (
	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/internal/repository"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
)

// API bundles the two upstream surfaces the services depend on. The
// concrete *upstream.Client satisfies both.
type API interface {
	upstream.ReservationAPI
	upstream.AuthAPI
}

// Service aggregates every service.
type Service struct {
	Auth        AuthService
	Planner     PlannerService
	Event       EventService
	Reservation ReservationService
	Export      ExportService
	Note        NoteService
}

// NewService wires the services onto the upstream API, the session
// store and the local repository.
func NewService(api API, sessions session.Store, repo *repository.Repository, logger *zap.Logger) *Service {
	planner := NewPlannerService()
	return &Service{
		Auth:        NewAuthService(api, sessions, logger),
		Planner:     planner,
		Event:       NewEventService(api, planner, logger),
		Reservation: NewReservationService(api, repo, logger),
		Export:      NewExportService(api, planner, logger),
		Note:        NewNoteService(repo, logger),
	}
}
