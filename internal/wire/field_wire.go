package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireField(
	r chi.Router,
	fieldHandler *adaptor.FieldHandler,
	slotHandler *adaptor.SlotHandler,
	identityClient *identity.Client,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/fields - List all fields
	r.Get("/api/fields", fieldHandler.GetFields)

	// GET /api/fields/{id} - Field detail
	r.Get("/api/fields/{id}", fieldHandler.GetFieldByID)

	// GET /api/fields/{id}/availability?date= - Daily slot grid
	r.Get("/api/fields/{id}/availability", slotHandler.GetAvailability)

	// POST /api/slots/validate - Validate an in-progress slot selection
	r.Post("/api/slots/validate", slotHandler.ValidateSelection)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/fields", func(r chi.Router) {
		r.Use(middleware.Auth(identityClient, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/fields - Create field
		r.Post("/", fieldHandler.CreateField)

		// PUT /api/admin/fields/{id} - Update field
		r.Put("/{id}", fieldHandler.UpdateField)

		// DELETE /api/admin/fields/{id} - Remove field
		r.Delete("/{id}", fieldHandler.DeleteField)
	})
}
