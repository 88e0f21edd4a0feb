package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
)

// ── mock note repository ──

type mockNoteRepo struct {
	notes map[string]*model.GuestNote

	upsertErr error
	getErr    error
	deleteErr error
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.GuestNote)}
}

func (m *mockNoteRepo) Upsert(_ context.Context, note *model.GuestNote) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	stored := *note
	if existing, ok := m.notes[note.ReservationID]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = time.Now()
	m.notes[note.ReservationID] = &stored
	return nil
}

func (m *mockNoteRepo) GetByReservation(_ context.Context, reservationID string) (*model.GuestNote, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	note, ok := m.notes[reservationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *note
	return &copied, nil
}

func (m *mockNoteRepo) Delete(_ context.Context, reservationID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.notes, reservationID)
	return nil
}
