package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	identityClient *identity.Client,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(identityClient, log))

		// GET /api/user/me - Current user profile
		r.Get("/api/user/me", userHandler.GetProfile)

		// PUT /api/user/profile - Update own profile
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})

	// ==================== OWNER ROUTES ====================
	// Role management is reserved for the owner
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.Auth(identityClient, log))
		r.Use(middleware.Owner(log))

		// PUT /api/admin/users/{uid}/role - Change a user's role
		r.Put("/{uid}/role", userHandler.UpdateRole)
	})
}
