package entity

import "time"

// Default settings used when the collection has never been written
const (
	DefaultTimeoutMinutes = 30
	DefaultMaxSlots       = 4
)

// Settings is a singleton record, lazily created with defaults on first
// read and overwritten wholesale on save
type Settings struct {
	PromptPayID    string    `json:"promptpay_id"`
	PromptPayName  string    `json:"promptpay_name"`
	CustomQR       *string   `json:"custom_qr,omitempty"` // optional image data URI
	TimeoutMinutes int       `json:"timeout_minutes"`     // payment deadline for pending bookings
	MaxSlots       int       `json:"max_slots"`           // max contiguous hours per booking
	UpdatedAt      time.Time `json:"updated_at"`
}

func DefaultSettings() *Settings {
	return &Settings{
		PromptPayID:    "",
		PromptPayName:  "",
		TimeoutMinutes: DefaultTimeoutMinutes,
		MaxSlots:       DefaultMaxSlots,
		UpdatedAt:      time.Now(),
	}
}
