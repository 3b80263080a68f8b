package response

import (
	"time"

	"field-booking/internal/data/entity"
)

type SettingsResponse struct {
	PromptPayID    string    `json:"promptpay_id"`
	PromptPayName  string    `json:"promptpay_name"`
	CustomQR       *string   `json:"custom_qr,omitempty"`
	TimeoutMinutes int       `json:"timeout_minutes"`
	MaxSlots       int       `json:"max_slots"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaymentInfoResponse carries what the client needs to render the
// payment QR for a booking; the QR image itself is generated client-side
type PaymentInfoResponse struct {
	BookingRef    string  `json:"booking_ref"`
	PromptPayID   string  `json:"promptpay_id"`
	PromptPayName string  `json:"promptpay_name"`
	CustomQR      *string `json:"custom_qr,omitempty"`
	Amount        float64 `json:"amount"`
}

func SettingsToResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		PromptPayID:    settings.PromptPayID,
		PromptPayName:  settings.PromptPayName,
		CustomQR:       settings.CustomQR,
		TimeoutMinutes: settings.TimeoutMinutes,
		MaxSlots:       settings.MaxSlots,
		UpdatedAt:      settings.UpdatedAt,
	}
}
