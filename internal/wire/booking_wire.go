package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	identityClient *identity.Client,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Customers book by name and phone, no account required
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create new booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings?phone= - Booking history by phone number
		r.Get("/", bookingHandler.GetBookingsByPhone)

		// GET /api/bookings/{id} - Booking detail (payment page)
		r.Get("/{id}", bookingHandler.GetBooking)

		// GET /api/bookings/{id}/payment - PromptPay payment info
		r.Get("/{id}/payment", bookingHandler.GetPaymentInfo)

		// POST /api/bookings/{id}/slip - Upload payment slip
		r.Post("/{id}/slip", bookingHandler.AttachSlip)

		// PUT /api/bookings/{id}/cancel - Cancel own booking
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(identityClient, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - All bookings, paginated
		r.Get("/", bookingHandler.GetAllBookings)

		// POST /api/admin/bookings/expire - Run the expiry sweep on demand
		r.Post("/expire", bookingHandler.ExpireBookings)

		// PUT /api/admin/bookings/{id}/confirm - Confirm payment
		r.Put("/{id}/confirm", bookingHandler.ConfirmBooking)

		// PUT /api/admin/bookings/{id}/cancel - Cancel any booking
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)

		// DELETE /api/admin/bookings/{id} - Remove booking record
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
