package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	identityClient *identity.Client,
	log *zap.Logger,
) {
	// GET /api/settings - Payment settings for the booking flow (public)
	r.Get("/api/settings", settingsHandler.GetSettings)

	r.Route("/api/admin/settings", func(r chi.Router) {
		r.Use(middleware.Auth(identityClient, log))
		r.Use(middleware.Admin(log))

		// PUT /api/admin/settings - Overwrite payment settings
		r.Put("/", settingsHandler.UpdateSettings)
	})
}
