package adaptor

import (
	"field-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Field    *FieldHandler
	Slot     *SlotHandler
	Booking  *BookingHandler
	Settings *SettingsHandler
	Report   *ReportHandler
	User     *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Field:    NewFieldHandler(service.Field, log),
		Slot:     NewSlotHandler(service.Slot, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Settings: NewSettingsHandler(service.Settings, log),
		Report:   NewReportHandler(service.Report, log),
		User:     NewUserHandler(service.User, log),
	}
}
