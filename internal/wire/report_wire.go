package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	identityClient *identity.Client,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(identityClient, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/dashboard - Today's revenue, bookings, pendings
		r.Get("/api/admin/dashboard", reportHandler.GetDashboardSummary)

		// GET /api/admin/reports/revenue?date= - Revenue for a date
		r.Get("/api/admin/reports/revenue", reportHandler.GetRevenue)

		// GET /api/admin/reports/occupancy?date= - Field x slot grid for a date
		r.Get("/api/admin/reports/occupancy", reportHandler.GetOccupancyGrid)
	})
}
