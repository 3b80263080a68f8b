package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

type Booking struct {
	Base
	BookingRef string    `json:"booking_ref"`
	FieldID    uuid.UUID `json:"field_id"`

	// Denormalized field data, kept for history even if the field is deleted
	FieldName  string  `json:"field_name"`
	FieldImage string  `json:"field_image"`
	Price      float64 `json:"price"` // per hour at booking time

	Date     string   `json:"date"`      // YYYY-MM-DD, no time zone
	Slots    []string `json:"slots"`     // contiguous hourly slot labels
	TimeSlot string   `json:"time_slot"` // display string, e.g. "10:00 - 12:00"

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`

	PaymentDeadline time.Time  `json:"payment_deadline"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`

	PaymentSlip    *string    `json:"payment_slip,omitempty"` // embedded image data URI
	SlipUploadedAt *time.Time `json:"slip_uploaded_at,omitempty"`
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsOverdue returns true if the booking is pending past its payment deadline
func (b *Booking) IsOverdue(now time.Time) bool {
	return b.Status == BookingStatusPending && now.After(b.PaymentDeadline)
}

// Occupies returns true if the booking holds the given slot for a field/date
func (b *Booking) Occupies(fieldID uuid.UUID, date, slot string) bool {
	if !b.IsActive() || b.FieldID != fieldID || b.Date != date {
		return false
	}
	for _, s := range b.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
