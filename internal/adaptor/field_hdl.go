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

type FieldHandler struct {
	service usecase.FieldService
	log     *zap.Logger
}

func NewFieldHandler(service usecase.FieldService, log *zap.Logger) *FieldHandler {
	return &FieldHandler{
		service: service,
		log:     log.With(zap.String("handler", "field")),
	}
}

// GetFields handles GET /api/fields (public)
func (h *FieldHandler) GetFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list fields")
		return
	}

	utils.ResponseSuccess(w, "success", fields)
}

// GetFieldByID handles GET /api/fields/{id} (public)
func (h *FieldHandler) GetFieldByID(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	field, err := h.service.Get(r.Context(), fieldID)
	if err != nil {
		h.handleServiceError(w, err, "get field")
		return
	}

	utils.ResponseSuccess(w, "success", field)
}

// ==================== ADMIN METHODS ====================

// CreateField handles POST /api/admin/fields (admin only)
func (h *FieldHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	field, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create field")
		return
	}

	utils.ResponseCreated(w, "success", field)
}

// UpdateField handles PUT /api/admin/fields/{id} (admin only)
func (h *FieldHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	var req request.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	field, err := h.service.Update(r.Context(), fieldID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update field")
		return
	}

	utils.ResponseSuccess(w, "success", field)
}

// DeleteField handles DELETE /api/admin/fields/{id} (admin only)
func (h *FieldHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), fieldID); err != nil {
		h.handleServiceError(w, err, "delete field")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *FieldHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

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
