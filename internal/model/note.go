package model

import "time"

// GuestNote is a device-local annotation a partner attaches to a
// reservation (guest names, phone numbers, table preferences). It is
// keyed by the backend's reservation id but stored only on this device;
// there is no consistency guarantee with the upstream record beyond a
// best-effort cleanup when a reservation is deleted through this UI.
type GuestNote struct {
	ReservationID string    `gorm:"primaryKey;size:64" json:"reservation_id"`
	Body          string    `gorm:"not null"           json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
