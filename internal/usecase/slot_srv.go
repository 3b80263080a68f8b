package usecase

import (
	"context"
	"fmt"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SlotService interface {
	// Availability returns the daily grid for a field/date with occupancy
	// and bookability per slot
	Availability(ctx context.Context, fieldID, date string) (*response.AvailabilityResponse, error)

	// ValidateSelection checks whether toggling a candidate slot keeps an
	// in-progress selection valid, returning the resulting selection
	ValidateSelection(ctx context.Context, req *request.ValidateSelectionRequest) (*response.SelectionResponse, error)
}

type slotService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewSlotService(repo *repository.Repository, log *zap.Logger) SlotService {
	return &slotService{
		repo: repo,
		log:  log.With(zap.String("service", "slot")),
		now:  time.Now,
	}
}

func (s *slotService) Availability(ctx context.Context, fieldID, date string) (*response.AvailabilityResponse, error) {
	fieldUUID, err := uuid.Parse(fieldID)
	if err != nil {
		return nil, fmt.Errorf("invalid field ID format %s: %w", fieldID, err)
	}

	if _, err := time.Parse(entity.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date format %s: %w", date, err)
	}

	field, err := s.repo.Field.FindByID(ctx, fieldUUID)
	if err != nil || field == nil {
		return nil, fmt.Errorf("field %s not found", fieldID)
	}

	occupied, err := s.occupiedSlots(ctx, fieldUUID, date)
	if err != nil {
		s.log.Error("Failed to resolve occupancy",
			zap.Error(err),
			zap.String("field_id", fieldID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("resolve occupancy: %w", err)
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	now := s.now()
	slots := make([]response.SlotAvailability, 0, entity.SlotCloseHour-entity.SlotOpenHour)
	for _, slot := range entity.DailySlots() {
		isOccupied := occupied[slot]
		slots = append(slots, response.SlotAvailability{
			Slot:     slot,
			Occupied: isOccupied,
			Bookable: !isOccupied && !slotInPast(date, slot, now),
		})
	}

	return &response.AvailabilityResponse{
		FieldID:  fieldID,
		Date:     date,
		MaxSlots: settings.MaxSlots,
		Slots:    slots,
	}, nil
}

func (s *slotService) ValidateSelection(ctx context.Context, req *request.ValidateSelectionRequest) (*response.SelectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Validate selection validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	fieldUUID, err := uuid.Parse(req.FieldID)
	if err != nil {
		return nil, fmt.Errorf("invalid field ID format %s: %w", req.FieldID, err)
	}

	// Removing an already-selected slot only has to keep the run gapless
	for _, selected := range req.Selection {
		if selected == req.Candidate {
			if !CanRemoveFromSelection(req.Selection, req.Candidate) {
				return &response.SelectionResponse{
					Allowed:   false,
					Reason:    "only the first or last slot of the selection can be removed",
					Selection: req.Selection,
				}, nil
			}

			remaining := make([]string, 0, len(req.Selection)-1)
			for _, slot := range req.Selection {
				if slot != req.Candidate {
					remaining = append(remaining, slot)
				}
			}

			return &response.SelectionResponse{Allowed: true, Selection: remaining}, nil
		}
	}

	occupied, err := s.occupiedSlots(ctx, fieldUUID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("resolve occupancy: %w", err)
	}

	// A past slot for today cannot be selected, without being reported
	// as reserved to anyone else
	if slotInPast(req.Date, req.Candidate, s.now()) {
		occupied[req.Candidate] = true
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	allowed, reason := CanExtendSelection(req.Selection, req.Candidate, occupied, settings.MaxSlots)
	if !allowed {
		return &response.SelectionResponse{
			Allowed:   false,
			Reason:    reason,
			Selection: req.Selection,
		}, nil
	}

	extended := append(append([]string{}, req.Selection...), req.Candidate)
	entity.SortSlots(extended)

	return &response.SelectionResponse{Allowed: true, Selection: extended}, nil
}

// occupiedSlots returns the set of slots held by active bookings for a
// field/date
func (s *slotService) occupiedSlots(ctx context.Context, fieldID uuid.UUID, date string) (map[string]bool, error) {
	bookings, err := s.repo.Booking.FindByFieldAndDate(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool)
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		for _, slot := range booking.Slots {
			occupied[slot] = true
		}
	}

	return occupied, nil
}

// CanExtendSelection applies the contiguous-selection rules: the candidate
// must be free, the run must stay within maxSlots, and the candidate must
// touch one end of the current run
func CanExtendSelection(selection []string, candidate string, occupied map[string]bool, maxSlots int) (bool, string) {
	candidateHour := entity.SlotStartHour(candidate)
	if candidateHour < 0 {
		return false, "unknown slot"
	}

	if occupied[candidate] {
		return false, "slot is not available"
	}

	if maxSlots > 0 && len(selection)+1 > maxSlots {
		return false, fmt.Sprintf("a booking is limited to %d consecutive hours", maxSlots)
	}

	if len(selection) == 0 {
		return true, ""
	}

	first, last := selectionBounds(selection)
	if first < 0 {
		return false, "current selection is invalid"
	}

	if candidateHour != first-1 && candidateHour != last+1 {
		return false, "selection must stay contiguous"
	}

	return true, ""
}

// CanRemoveFromSelection allows removal only at the two ends of the run;
// removing an interior slot would split it
func CanRemoveFromSelection(selection []string, slot string) bool {
	if len(selection) == 0 {
		return false
	}

	hour := entity.SlotStartHour(slot)
	first, last := selectionBounds(selection)

	return hour >= 0 && (hour == first || hour == last)
}

func selectionBounds(selection []string) (first, last int) {
	first, last = -1, -1
	for _, slot := range selection {
		hour := entity.SlotStartHour(slot)
		if hour < 0 {
			return -1, -1
		}
		if first == -1 || hour < first {
			first = hour
		}
		if hour > last {
			last = hour
		}
	}
	return first, last
}

// slotInPast reports whether the slot's start time has already passed for
// the given date; only today's slots can ever be in the past for booking
// purposes
func slotInPast(date, slot string, now time.Time) bool {
	day, err := time.ParseInLocation(entity.DateFormat, date, now.Location())
	if err != nil {
		return false
	}

	hour := entity.SlotStartHour(slot)
	if hour < 0 {
		return false
	}

	start := day.Add(time.Duration(hour) * time.Hour)
	return !start.After(now)
}
