package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxSlipBytes caps embedded payment slip images at 5MB
const MaxSlipBytes = 5 * 1024 * 1024

type BookingService interface {
	// Public endpoints
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	GetByPhone(ctx context.Context, phone string) ([]response.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	AttachSlip(ctx context.Context, bookingID string, req *request.AttachSlipRequest) error
	PaymentInfo(ctx context.Context, bookingID string) (*response.PaymentInfoResponse, error)

	// Admin endpoints
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Confirm(ctx context.Context, bookingID string) error
	Delete(ctx context.Context, bookingID string) error

	// Sweep: run by a timer in main and callable on demand
	ExpireOverdue(ctx context.Context) (int, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	fieldID, err := uuid.Parse(req.FieldID)
	if err != nil {
		return nil, fmt.Errorf("invalid field ID format %s: %w", req.FieldID, err)
	}

	// Validate field exists
	field, err := s.repo.Field.FindByID(ctx, fieldID)
	if err != nil || field == nil {
		return nil, fmt.Errorf("field %s not found", req.FieldID)
	}

	// Normalize and validate the slot run
	slots := make([]string, len(req.Slots))
	copy(slots, req.Slots)
	entity.SortSlots(slots)

	if !entity.IsContiguous(slots) {
		return nil, fmt.Errorf("invalid slot selection: slots must form a contiguous run")
	}

	// Timeout and slot limit are read from settings at creation time and
	// never re-read for this booking
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.log.Error("Failed to read settings", zap.Error(err))
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if settings.MaxSlots > 0 && len(slots) > settings.MaxSlots {
		return nil, fmt.Errorf("invalid slot selection: a booking is limited to %d consecutive hours", settings.MaxSlots)
	}

	now := s.now()
	if slotInPast(req.Date, slots[0], now) {
		return nil, fmt.Errorf("cannot book a slot that has already started")
	}

	// Re-validate occupancy at creation time
	existing, err := s.repo.Booking.FindByFieldAndDate(ctx, fieldID, req.Date)
	if err != nil {
		s.log.Error("Failed to check slot availability", zap.Error(err))
		return nil, fmt.Errorf("check slot availability: %w", err)
	}

	for _, slot := range slots {
		for _, other := range existing {
			if other.Occupies(fieldID, req.Date, slot) {
				return nil, fmt.Errorf("slot %s is already booked", slot)
			}
		}
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingRef:      utils.GenerateBookingRef(),
		FieldID:         fieldID,
		FieldName:       field.Name,
		FieldImage:      field.Image,
		Price:           field.Price,
		Date:            req.Date,
		Slots:           slots,
		TimeSlot:        entity.FormatTimeSlot(slots),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		TotalPrice:      field.Price * float64(len(slots)),
		Status:          entity.BookingStatusPending,
		PaymentDeadline: now.Add(time.Duration(settings.TimeoutMinutes) * time.Minute),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("field_id", req.FieldID),
			zap.String("date", req.Date),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_ref", booking.BookingRef),
		zap.String("field_name", field.Name),
		zap.String("date", req.Date),
		zap.Int("slot_count", len(slots)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToDetailResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByPhone(ctx context.Context, phone string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByPhone(ctx, phone)
	if err != nil {
		s.log.Error("Failed to get bookings by phone", zap.Error(err))
		return nil, fmt.Errorf("get bookings by phone: %w", err)
	}

	sortByCreatedDesc(bookings)

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return responses, nil
}

func (s *bookingService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	sortByCreatedDesc(bookings)

	total := int64(len(bookings))
	offset := req.Offset()
	limit := req.Limit()

	if offset > len(bookings) {
		offset = len(bookings)
	}
	end := offset + limit
	if end > len(bookings) {
		end = len(bookings)
	}

	page := bookings[offset:end]
	responses := make([]response.BookingResponse, len(page))
	for i, booking := range page {
		responses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) Confirm(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	// Confirm only moves pending bookings; anything else is a no-op failure
	if booking.Status != entity.BookingStatusPending {
		return fmt.Errorf("booking status is %s, cannot confirm", booking.Status)
	}

	now := s.now()
	booking.Status = entity.BookingStatusConfirmed
	booking.ConfirmedAt = &now
	booking.UpdatedAt = now

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.String("booking_ref", booking.BookingRef),
	)

	return nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		return fmt.Errorf("booking status is %s, cannot cancel", booking.Status)
	}

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = s.now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_ref", booking.BookingRef),
	)

	return nil
}

// AttachSlip stores the uploaded payment slip on the booking without
// touching its status; confirmation stays a separate admin action
func (s *bookingService) AttachSlip(ctx context.Context, bookingID string, req *request.AttachSlipRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Attach slip validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if len(req.Slip) > MaxSlipBytes {
		return fmt.Errorf("validation failed: payment slip exceeds the 5MB limit")
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	now := s.now()
	booking.PaymentSlip = &req.Slip
	booking.SlipUploadedAt = &now
	booking.UpdatedAt = now

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to attach payment slip",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("attach payment slip to %s: %w", bookingID, err)
	}

	s.log.Info("Payment slip attached",
		zap.String("booking_id", bookingID),
		zap.String("booking_ref", booking.BookingRef),
		zap.Int("slip_bytes", len(req.Slip)),
	)

	return nil
}

func (s *bookingService) PaymentInfo(ctx context.Context, bookingID string) (*response.PaymentInfoResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return &response.PaymentInfoResponse{
		BookingRef:    booking.BookingRef,
		PromptPayID:   settings.PromptPayID,
		PromptPayName: settings.PromptPayName,
		CustomQR:      settings.CustomQR,
		Amount:        booking.TotalPrice,
	}, nil
}

func (s *bookingService) Delete(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}

// ExpireOverdue scans all bookings and expires pending ones whose payment
// deadline has passed. Re-running it is a no-op for already-expired
// bookings, and confirmed bookings are never touched.
func (s *bookingService) ExpireOverdue(ctx context.Context) (int, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings for expiry sweep", zap.Error(err))
		return 0, fmt.Errorf("expiry sweep: %w", err)
	}

	now := s.now()
	expired := 0

	for _, booking := range bookings {
		if !booking.IsOverdue(now) {
			continue
		}

		booking.Status = entity.BookingStatusExpired
		booking.UpdatedAt = now

		if err := s.repo.Booking.Update(ctx, booking); err != nil {
			s.log.Error("Failed to expire booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return expired, fmt.Errorf("expire booking %s: %w", booking.ID.String(), err)
		}

		expired++
		s.log.Info("Booking expired",
			zap.String("booking_id", booking.ID.String()),
			zap.String("booking_ref", booking.BookingRef),
			zap.Time("payment_deadline", booking.PaymentDeadline),
		)
	}

	return expired, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}

func sortByCreatedDesc(bookings []*entity.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
