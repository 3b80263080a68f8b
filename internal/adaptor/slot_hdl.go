package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"field-booking/internal/dto/request"
	"field-booking/internal/usecase"
	"field-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// GetAvailability handles GET /api/fields/{id}/availability?date={date} (public)
func (h *SlotHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	availability, err := h.service.Availability(r.Context(), fieldID, date)
	if err != nil {
		h.handleServiceError(w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// ValidateSelection handles POST /api/slots/validate (public)
func (h *SlotHandler) ValidateSelection(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.ValidateSelection(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "validate selection")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

func (h *SlotHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
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
