package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/denizbarcak/planvia-partner-ui/internal/dto"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/repository"
)

// ErrNoteNotFound is returned when a reservation has no stored note.
var ErrNoteNotFound = errors.New("no note for this reservation")

// NoteService manages the device-local guest notes attached to
// reservations. Notes never reach the upstream API.
type NoteService interface {
	Set(ctx context.Context, reservationID string, req *dto.NoteRequest) (*dto.NoteResponse, error)
	Get(ctx context.Context, reservationID string) (*dto.NoteResponse, error)
	Delete(ctx context.Context, reservationID string) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoteService creates a NoteService.
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, logger: logger}
}

// Set creates or replaces the note for a reservation.
func (s *noteService) Set(ctx context.Context, reservationID string, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	note := &model.GuestNote{
		ReservationID: reservationID,
		Body:          req.Body,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.repo.Note.Upsert(ctx, note); err != nil {
		s.logger.Error("saving guest note failed", zap.String("reservation_id", reservationID), zap.Error(err))
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Get loads the note for a reservation.
func (s *noteService) Get(ctx context.Context, reservationID string) (*dto.NoteResponse, error) {
	note, err := s.repo.Note.GetByReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		s.logger.Error("loading guest note failed", zap.String("reservation_id", reservationID), zap.Error(err))
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Delete removes the note for a reservation. Deleting a missing note
// is not an error.
func (s *noteService) Delete(ctx context.Context, reservationID string) error {
	return s.repo.Note.Delete(ctx, reservationID)
}

func toNoteResponse(note *model.GuestNote) *dto.NoteResponse {
	return &dto.NoteResponse{
		ReservationID: note.ReservationID,
		Body:          note.Body,
		UpdatedAt:     note.UpdatedAt.Format(time.RFC3339),
	}
}
