package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/denizbarcak/planvia-partner-ui/internal/model"
)

// NoteRepository stores guest notes keyed by reservation id.
type NoteRepository interface {
	Upsert(ctx context.Context, note *model.GuestNote) error
	GetByReservation(ctx context.Context, reservationID string) (*model.GuestNote, error)
	Delete(ctx context.Context, reservationID string) error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a NoteRepository on the given database.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Upsert(ctx context.Context, note *model.GuestNote) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reservation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(note).Error
}

func (r *noteRepository) GetByReservation(ctx context.Context, reservationID string) (*model.GuestNote, error) {
	var note model.GuestNote
	if err := r.db.WithContext(ctx).First(&note, "reservation_id = ?", reservationID).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Delete(ctx context.Context, reservationID string) error {
	return r.db.WithContext(ctx).Delete(&model.GuestNote{}, "reservation_id = ?", reservationID).Error
}
