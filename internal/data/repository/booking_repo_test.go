package repository

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBooking(fieldID uuid.UUID, date, phone string) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BookingRef:      "BK-TEST-" + uuid.NewString()[:8],
		FieldID:         fieldID,
		FieldName:       "Football Field A",
		Date:            date,
		Slots:           []string{"10:00-11:00"},
		TimeSlot:        "10:00 - 11:00",
		CustomerName:    "Somsak",
		CustomerPhone:   phone,
		Price:           500,
		TotalPrice:      500,
		Status:          entity.BookingStatusPending,
		PaymentDeadline: now.Add(30 * time.Minute),
	}
}

func TestBookingRepositoryCreateAndFind(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	fieldID := uuid.New()
	booking := newTestBooking(fieldID, "2026-01-10", "0812345678")
	require.NoError(t, repo.Create(ctx, booking))

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, booking.BookingRef, found.BookingRef)
	assert.Equal(t, entity.BookingStatusPending, found.Status)

	byRef, err := repo.FindByRef(ctx, booking.BookingRef)
	require.NoError(t, err)
	require.NotNil(t, byRef)
	assert.Equal(t, booking.ID, byRef.ID)
}

func TestBookingRepositoryCreateRejectsOccupiedSlot(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	fieldID := uuid.New()
	require.NoError(t, repo.Create(ctx, newTestBooking(fieldID, "2026-01-10", "0811111111")))

	err := repo.Create(ctx, newTestBooking(fieldID, "2026-01-10", "0822222222"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")

	// A cancelled booking frees its slot for a fresh create
	other := newTestBooking(fieldID, "2026-01-11", "0833333333")
	require.NoError(t, repo.Create(ctx, other))
	other.Status = entity.BookingStatusCancelled
	require.NoError(t, repo.Update(ctx, other))
	require.NoError(t, repo.Create(ctx, newTestBooking(fieldID, "2026-01-11", "0844444444")))
}

func TestBookingRepositoryFindMissingReturnsNil(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBookingRepositoryFindByFieldAndDate(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	fieldID := uuid.New()
	require.NoError(t, repo.Create(ctx, newTestBooking(fieldID, "2026-01-10", "0811111111")))
	require.NoError(t, repo.Create(ctx, newTestBooking(fieldID, "2026-01-11", "0822222222")))
	require.NoError(t, repo.Create(ctx, newTestBooking(uuid.New(), "2026-01-10", "0833333333")))

	matched, err := repo.FindByFieldAndDate(ctx, fieldID, "2026-01-10")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "0811111111", matched[0].CustomerPhone)
}

func TestBookingRepositoryFindByPhone(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestBooking(uuid.New(), "2026-01-10", "0899999999")))
	require.NoError(t, repo.Create(ctx, newTestBooking(uuid.New(), "2026-01-11", "0899999999")))
	require.NoError(t, repo.Create(ctx, newTestBooking(uuid.New(), "2026-01-12", "0800000000")))

	matched, err := repo.FindByPhone(ctx, "0899999999")
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestBookingRepositoryUpdatePersistsStatus(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	booking := newTestBooking(uuid.New(), "2026-01-10", "0812345678")
	require.NoError(t, repo.Create(ctx, booking))

	booking.Status = entity.BookingStatusConfirmed
	require.NoError(t, repo.Update(ctx, booking))

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.BookingStatusConfirmed, found.Status)
}

func TestBookingRepositoryUpdateMissingFails(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())

	err := repo.Update(context.Background(), newTestBooking(uuid.New(), "2026-01-10", "0812345678"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBookingRepositoryDelete(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	booking := newTestBooking(uuid.New(), "2026-01-10", "0812345678")
	require.NoError(t, repo.Create(ctx, booking))
	require.NoError(t, repo.Delete(ctx, booking.ID))

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(ctx, booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFieldRepositorySeedsDefaultsOnFirstRead(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewFieldRepository(store, zap.NewNop())
	ctx := context.Background()

	fields, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, fields)

	// Seed must be persisted, not regenerated per read
	again, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, again, len(fields))
	assert.Equal(t, fields[0].ID, again[0].ID)
}

func TestSettingsRepositoryLazyDefaults(t *testing.T) {
	repo := NewSettingsRepository(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTimeoutMinutes, settings.TimeoutMinutes)
	assert.Equal(t, entity.DefaultMaxSlots, settings.MaxSlots)

	settings.TimeoutMinutes = 15
	settings.PromptPayID = "0812345678"
	require.NoError(t, repo.Save(ctx, settings))

	saved, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, saved.TimeoutMinutes)
	assert.Equal(t, "0812345678", saved.PromptPayID)
}
