package wire

import (
	"net/http"
	"time"

	"field-booking/internal/adaptor"
	"field-booking/internal/data/repository"
	"field-booking/internal/integrations/identity"
	"field-booking/internal/usecase"
	"field-booking/pkg/middleware"
	"field-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	identityClient := identity.NewClient(
		config.Identity.BaseURL,
		time.Duration(config.Identity.TimeoutSeconds)*time.Second,
		logger,
	)

	service := usecase.NewService(repo, identityClient, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, identityClient, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	identityClient *identity.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireField(r, handler.Field, handler.Slot, identityClient, logger)
	wireBooking(r, handler.Booking, identityClient, logger)
	wireSettings(r, handler.Settings, identityClient, logger)
	wireReport(r, handler.Report, identityClient, logger)
	wireUser(r, handler.User, identityClient, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
