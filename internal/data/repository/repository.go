package repository

import (
	"field-booking/pkg/storage"

	"go.uber.org/zap"
)

// Collection names inside the document store
const (
	CollectionFields   = "fields"
	CollectionBookings = "bookings"
	CollectionSettings = "settings"
)

type Repository struct {
	Field    FieldRepository
	Booking  BookingRepository
	Settings SettingsRepository
}

func NewRepository(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{
		Field:    NewFieldRepository(store, log),
		Booking:  NewBookingRepository(store, log),
		Settings: NewSettingsRepository(store, log),
	}
}
