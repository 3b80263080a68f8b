package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"field-booking/internal/data/entity"
	"field-booking/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByRef(ctx context.Context, bookingRef string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByPhone(ctx context.Context, phone string) ([]*entity.Booking, error)
	FindByFieldAndDate(ctx context.Context, fieldID uuid.UUID, date string) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	store storage.Store
	mu    sync.Mutex // serializes read-modify-write cycles on the collection
	log   *zap.Logger
}

func NewBookingRepository(store storage.Store, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		store: store,
		log:   log.With(zap.String("repository", "booking")),
	}
}

// load reads the whole bookings collection; a never-written collection
// defaults to an empty list
func (r *bookingRepository) load() ([]*entity.Booking, error) {
	data, found, err := r.store.Read(CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	if !found {
		return []*entity.Booking{}, nil
	}

	var bookings []*entity.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings collection: %w", err)
	}

	return bookings, nil
}

// save overwrites the whole bookings collection
func (r *bookingRepository) save(bookings []*entity.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings collection: %w", err)
	}

	if err := r.store.Write(CollectionBookings, data); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}

	return nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to load bookings for create", zap.Error(err))
		return err
	}

	// Occupancy is re-checked under the lock so two concurrent creates
	// cannot both claim the same slot
	for _, slot := range booking.Slots {
		for _, other := range bookings {
			if other.Occupies(booking.FieldID, booking.Date, slot) {
				return fmt.Errorf("slot %s is already booked", slot)
			}
		}
	}

	bookings = append(bookings, booking)

	if err := r.save(bookings); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_ref", booking.BookingRef),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingRef, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	for _, booking := range bookings {
		if booking.ID == id {
			return booking, nil
		}
	}

	return nil, nil
}

func (r *bookingRepository) FindByRef(ctx context.Context, bookingRef string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to find booking by ref",
			zap.Error(err),
			zap.String("booking_ref", bookingRef),
		)
		return nil, fmt.Errorf("find booking by ref %s: %w", bookingRef, err)
	}

	for _, booking := range bookings {
		if booking.BookingRef == bookingRef {
			return booking, nil
		}
	}

	return nil, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByPhone(ctx context.Context, phone string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to find bookings by phone", zap.Error(err))
		return nil, fmt.Errorf("find bookings by phone: %w", err)
	}

	var matched []*entity.Booking
	for _, booking := range bookings {
		if booking.CustomerPhone == phone {
			matched = append(matched, booking)
		}
	}

	return matched, nil
}

func (r *bookingRepository) FindByFieldAndDate(ctx context.Context, fieldID uuid.UUID, date string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to find bookings by field and date",
			zap.Error(err),
			zap.String("field_id", fieldID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find bookings for field %s on %s: %w", fieldID.String(), date, err)
	}

	var matched []*entity.Booking
	for _, booking := range bookings {
		if booking.FieldID == fieldID && booking.Date == date {
			matched = append(matched, booking)
		}
	}

	return matched, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to load bookings for update", zap.Error(err))
		return err
	}

	for i, existing := range bookings {
		if existing.ID == booking.ID {
			bookings[i] = booking

			if err := r.save(bookings); err != nil {
				r.log.Error("Failed to update booking",
					zap.Error(err),
					zap.String("booking_id", booking.ID.String()),
				)
				return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
			}

			return nil
		}
	}

	return fmt.Errorf("booking %s not found", booking.ID.String())
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		r.log.Error("Failed to load bookings for delete", zap.Error(err))
		return err
	}

	for i, existing := range bookings {
		if existing.ID == id {
			bookings = append(bookings[:i], bookings[i+1:]...)

			if err := r.save(bookings); err != nil {
				r.log.Error("Failed to delete booking",
					zap.Error(err),
					zap.String("booking_id", id.String()),
				)
				return fmt.Errorf("delete booking %s: %w", id.String(), err)
			}

			r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
			return nil
		}
	}

	return fmt.Errorf("booking %s not found", id.String())
}
