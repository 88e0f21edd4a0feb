package dto

// ── guest note DTOs ──

// NoteRequest sets or replaces the device-local note for a reservation.
type NoteRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// NoteResponse is a stored note.
type NoteResponse struct {
	ReservationID string `json:"reservation_id"`
	Body          string `json:"body"`
	UpdatedAt     string `json:"updated_at"`
}
