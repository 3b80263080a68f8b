package adaptor

import (
	"net/http"
	"strings"

	"field-booking/internal/usecase"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetRevenue handles GET /api/admin/reports/revenue?date={date} (admin only)
func (h *ReportHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	revenue, err := h.service.Revenue(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "get revenue")
		return
	}

	utils.ResponseSuccess(w, "success", revenue)
}

// GetOccupancyGrid handles GET /api/admin/reports/occupancy?date={date} (admin only)
func (h *ReportHandler) GetOccupancyGrid(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	grid, err := h.service.OccupancyGrid(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "get occupancy grid")
		return
	}

	utils.ResponseSuccess(w, "success", grid)
}

// GetDashboardSummary handles GET /api/admin/dashboard (admin only)
func (h *ReportHandler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.DashboardSummary(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get dashboard summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

func (h *ReportHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
