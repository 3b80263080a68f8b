package usecase

import (
	"field-booking/internal/data/repository"
	"field-booking/internal/integrations/identity"

	"go.uber.org/zap"
)

type Service struct {
	Field    FieldService
	Slot     SlotService
	Booking  BookingService
	Settings SettingsService
	Report   ReportService
	User     UserService
}

func NewService(repo *repository.Repository, identityClient *identity.Client, log *zap.Logger) *Service {
	return &Service{
		Field:    NewFieldService(repo, log),
		Slot:     NewSlotService(repo, log),
		Booking:  NewBookingService(repo, log),
		Settings: NewSettingsService(repo, log),
		Report:   NewReportService(repo, log),
		User:     NewUserService(identityClient, log),
	}
}
