package repository

import "gorm.io/gorm"

// Repository aggregates the device-local stores. The upstream API is
// the system of record for reservations; only side-table data the
// backend does not know about lives here.
type Repository struct {
	Note NoteRepository
}

// NewRepository wires the repositories onto the local database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Note: NewNoteRepository(db),
	}
}
