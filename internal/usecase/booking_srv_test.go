package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Fixed test clock: 2026-01-05 12:00 local time
var testNow = time.Date(2026, 1, 5, 12, 0, 0, 0, time.Local)

type bookingTestEnv struct {
	repo    *repository.Repository
	svc     *bookingService
	fieldID string
}

func newBookingTestEnv(t *testing.T) *bookingTestEnv {
	t.Helper()

	repo := repository.NewRepository(storage.NewMemoryStore(), zap.NewNop())
	svc := NewBookingService(repo, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return testNow }

	field := &entity.Field{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: testNow, UpdatedAt: testNow},
		Name:  "F1",
		Type:  entity.FieldTypeFootball,
		Price: 500,
		Image: "/images/f1.jpg",
	}
	require.NoError(t, repo.Field.Create(context.Background(), field))

	return &bookingTestEnv{
		repo:    repo,
		svc:     svc,
		fieldID: field.ID.String(),
	}
}

func (e *bookingTestEnv) createBooking(t *testing.T, date string, slots []string) string {
	t.Helper()

	resp, err := e.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       e.fieldID,
		Date:          date,
		Slots:         slots,
		CustomerName:  "Somsak",
		CustomerPhone: "0812345678",
	})
	require.NoError(t, err)

	return resp.ID
}

func TestCreateBookingComputesTotalsAndDeadline(t *testing.T) {
	env := newBookingTestEnv(t)

	resp, err := env.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       env.fieldID,
		Date:          "2026-01-10",
		Slots:         []string{"10:00-11:00", "11:00-12:00"},
		CustomerName:  "Somsak",
		CustomerPhone: "0812345678",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, 1000.0, resp.TotalPrice)
	assert.Equal(t, 500.0, resp.Price)
	assert.Equal(t, "10:00 - 12:00", resp.TimeSlot)
	assert.Equal(t, "F1", resp.FieldName)

	// Deadline = createdAt + timeout minutes, read from settings at create
	expected := testNow.Add(entity.DefaultTimeoutMinutes * time.Minute)
	assert.True(t, resp.PaymentDeadline.Equal(expected))
	assert.Nil(t, resp.ConfirmedAt)
	assert.False(t, resp.HasPaymentSlip)
}

func TestCreateBookingRejectsNonContiguousSlots(t *testing.T) {
	env := newBookingTestEnv(t)

	_, err := env.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       env.fieldID,
		Date:          "2026-01-10",
		Slots:         []string{"10:00-11:00", "12:00-13:00"},
		CustomerName:  "Somsak",
		CustomerPhone: "0812345678",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contiguous")
}

func TestCreateBookingRejectsOccupiedSlot(t *testing.T) {
	env := newBookingTestEnv(t)
	env.createBooking(t, "2026-01-10", []string{"10:00-11:00", "11:00-12:00"})

	_, err := env.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       env.fieldID,
		Date:          "2026-01-10",
		Slots:         []string{"11:00-12:00"},
		CustomerName:  "Somchai",
		CustomerPhone: "0898765432",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")

	// The same run on another date is fine
	env.createBooking(t, "2026-01-11", []string{"11:00-12:00"})
}

func TestCreateBookingRejectsRunOverMaxSlots(t *testing.T) {
	env := newBookingTestEnv(t)

	// Default settings cap a booking at 4 contiguous hours
	_, err := env.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       env.fieldID,
		Date:          "2026-01-10",
		Slots:         []string{"10:00-11:00", "11:00-12:00", "12:00-13:00", "13:00-14:00", "14:00-15:00"},
		CustomerName:  "Somsak",
		CustomerPhone: "0812345678",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 consecutive hours")
}

func TestCreateBookingRejectsPastSlotToday(t *testing.T) {
	env := newBookingTestEnv(t)

	// Test clock is 12:00; the 10:00 slot of today has already started
	_, err := env.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       env.fieldID,
		Date:          testNow.Format(entity.DateFormat),
		Slots:         []string{"10:00-11:00"},
		CustomerName:  "Somsak",
		CustomerPhone: "0812345678",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already started")

	// A later slot of today is still bookable
	env.createBooking(t, testNow.Format(entity.DateFormat), []string{"15:00-16:00"})
}

func TestCreateBookingUnknownField(t *testing.T) {
	env := newBookingTestEnv(t)

	_, err := env.svc.Create(context.Background(), &request.CreateBookingRequest{
		FieldID:       uuid.NewString(),
		Date:          "2026-01-10",
		Slots:         []string{"10:00-11:00"},
		CustomerName:  "Somsak",
		CustomerPhone: "0812345678",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfirmBooking(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00", "11:00-12:00"})

	require.NoError(t, env.svc.Confirm(ctx, id))

	detail, err := env.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, detail.Status)
	require.NotNil(t, detail.ConfirmedAt)
	assert.True(t, detail.ConfirmedAt.Equal(testNow))

	// Confirming again is a no-op failure and changes nothing
	err = env.svc.Confirm(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot confirm")

	detail, err = env.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, detail.Status)
}

func TestConfirmMissingBooking(t *testing.T) {
	env := newBookingTestEnv(t)

	err := env.svc.Confirm(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCancelBooking(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	// Pending bookings can be cancelled
	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})
	require.NoError(t, env.svc.Cancel(ctx, id))

	detail, err := env.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, detail.Status)

	// Cancelled is terminal
	err = env.svc.Cancel(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel")

	// Confirmed bookings can be cancelled too
	id2 := env.createBooking(t, "2026-01-10", []string{"12:00-13:00"})
	require.NoError(t, env.svc.Confirm(ctx, id2))
	require.NoError(t, env.svc.Cancel(ctx, id2))
}

func TestExpireOverdueSweep(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	pendingID := env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})
	confirmedID := env.createBooking(t, "2026-01-10", []string{"12:00-13:00"})
	require.NoError(t, env.svc.Confirm(ctx, confirmedID))

	// Nothing is overdue yet
	expired, err := env.svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, expired)

	// Advance the clock past the payment deadline
	env.svc.now = func() time.Time { return testNow.Add(time.Hour) }

	expired, err = env.svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	detail, err := env.svc.GetByID(ctx, pendingID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusExpired, detail.Status)

	// Confirmed bookings are never altered by the sweep
	detail, err = env.svc.GetByID(ctx, confirmedID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, detail.Status)

	// Sweeping again is idempotent
	expired, err = env.svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, expired)
}

func TestExpiredBookingFreesItsSlots(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})

	env.svc.now = func() time.Time { return testNow.Add(time.Hour) }
	_, err := env.svc.ExpireOverdue(ctx)
	require.NoError(t, err)

	// The slot can be booked again
	env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})
}

func TestAttachSlip(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})

	slip := "data:image/png;base64,iVBORw0KGgo="
	require.NoError(t, env.svc.AttachSlip(ctx, id, &request.AttachSlipRequest{Slip: slip}))

	detail, err := env.svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, detail.PaymentSlip)
	assert.Equal(t, slip, *detail.PaymentSlip)
	require.NotNil(t, detail.SlipUploadedAt)

	// Uploading a slip never changes the booking status
	assert.Equal(t, entity.BookingStatusPending, detail.Status)

	// A slip can also be attached after confirmation
	require.NoError(t, env.svc.Confirm(ctx, id))
	require.NoError(t, env.svc.AttachSlip(ctx, id, &request.AttachSlipRequest{Slip: slip}))
}

func TestAttachSlipRejectsOversizedUpload(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})

	huge := strings.Repeat("a", MaxSlipBytes+1)
	err := env.svc.AttachSlip(ctx, id, &request.AttachSlipRequest{Slip: huge})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")

	// Rejected uploads leave no trace on the booking
	detail, err := env.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, detail.PaymentSlip)
	assert.False(t, detail.HasPaymentSlip)
}

func TestDeleteBooking(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	// Delete has no status precondition
	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})
	require.NoError(t, env.svc.Confirm(ctx, id))
	require.NoError(t, env.svc.Delete(ctx, id))

	_, err := env.svc.GetByID(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = env.svc.Delete(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetByPhone(t *testing.T) {
	env := newBookingTestEnv(t)

	env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})
	env.createBooking(t, "2026-01-11", []string{"10:00-11:00"})

	bookings, err := env.svc.GetByPhone(context.Background(), "0812345678")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	bookings, err = env.svc.GetByPhone(context.Background(), "0800000000")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGetAllPaginated(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	for hour := 10; hour < 15; hour++ {
		env.createBooking(t, "2026-01-10", []string{entity.SlotLabel(hour)})
	}

	page, err := env.svc.GetAll(ctx, &request.PaginatedRequest{Page: 1, PerPage: 3})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, int64(5), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	page, err = env.svc.GetAll(ctx, &request.PaginatedRequest{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)

	page, err = env.svc.GetAll(ctx, &request.PaginatedRequest{Page: 3, PerPage: 3})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestPaymentInfo(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	settingsSvc := NewSettingsService(env.repo, zap.NewNop())
	_, err := settingsSvc.Update(ctx, &request.UpdateSettingsRequest{
		PromptPayID:    "0812345678",
		PromptPayName:  "Field Owner",
		TimeoutMinutes: 30,
		MaxSlots:       4,
	})
	require.NoError(t, err)

	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00", "11:00-12:00"})

	info, err := env.svc.PaymentInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "0812345678", info.PromptPayID)
	assert.Equal(t, "Field Owner", info.PromptPayName)
	assert.Equal(t, 1000.0, info.Amount)
}
