package response

import (
	"time"

	"field-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	BookingRef      string               `json:"booking_ref"`
	FieldID         string               `json:"field_id"`
	FieldName       string               `json:"field_name"`
	FieldImage      string               `json:"field_image,omitempty"`
	Date            string               `json:"date"`
	Slots           []string             `json:"slots"`
	TimeSlot        string               `json:"time_slot"`
	CustomerName    string               `json:"customer_name"`
	CustomerPhone   string               `json:"customer_phone"`
	Price           float64              `json:"price"`
	TotalPrice      float64              `json:"total_price"`
	Status          entity.BookingStatus `json:"status"`
	PaymentDeadline time.Time            `json:"payment_deadline"`
	ConfirmedAt     *time.Time           `json:"confirmed_at,omitempty"`
	HasPaymentSlip  bool                 `json:"has_payment_slip"`
	SlipUploadedAt  *time.Time           `json:"slip_uploaded_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// BookingDetailResponse additionally carries the embedded slip image,
// which is large and therefore excluded from list responses
type BookingDetailResponse struct {
	BookingResponse
	PaymentSlip *string `json:"payment_slip,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		BookingRef:      booking.BookingRef,
		FieldID:         booking.FieldID.String(),
		FieldName:       booking.FieldName,
		FieldImage:      booking.FieldImage,
		Date:            booking.Date,
		Slots:           booking.Slots,
		TimeSlot:        booking.TimeSlot,
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		Price:           booking.Price,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		PaymentDeadline: booking.PaymentDeadline,
		ConfirmedAt:     booking.ConfirmedAt,
		HasPaymentSlip:  booking.PaymentSlip != nil,
		SlipUploadedAt:  booking.SlipUploadedAt,
		CreatedAt:       booking.CreatedAt,
	}
}

func BookingToDetailResponse(booking *entity.Booking) BookingDetailResponse {
	return BookingDetailResponse{
		BookingResponse: BookingToResponse(booking),
		PaymentSlip:     booking.PaymentSlip,
	}
}
