package usecase

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCanExtendSelection(t *testing.T) {
	occupied := map[string]bool{"14:00-15:00": true}

	tests := []struct {
		name      string
		selection []string
		candidate string
		allowed   bool
		reason    string
	}{
		{
			name:      "first slot of an empty selection",
			selection: nil,
			candidate: "10:00-11:00",
			allowed:   true,
		},
		{
			name:      "extend after the run",
			selection: []string{"10:00-11:00", "11:00-12:00"},
			candidate: "12:00-13:00",
			allowed:   true,
		},
		{
			name:      "extend before the run",
			selection: []string{"11:00-12:00"},
			candidate: "10:00-11:00",
			allowed:   true,
		},
		{
			name:      "non-adjacent slot breaks the run",
			selection: []string{"10:00-11:00", "11:00-12:00"},
			candidate: "13:00-14:00",
			allowed:   false,
			reason:    "selection must stay contiguous",
		},
		{
			name:      "occupied slot",
			selection: []string{"13:00-14:00"},
			candidate: "14:00-15:00",
			allowed:   false,
			reason:    "slot is not available",
		},
		{
			name:      "fifth slot over the four hour cap",
			selection: []string{"10:00-11:00", "11:00-12:00", "12:00-13:00", "13:00-14:00"},
			candidate: "14:00-15:00",
			allowed:   false,
			reason:    "a booking is limited to 4 consecutive hours",
		},
		{
			name:      "slot outside the daily grid",
			selection: nil,
			candidate: "22:00-23:00",
			allowed:   false,
			reason:    "unknown slot",
		},
		{
			name:      "malformed slot label",
			selection: nil,
			candidate: "10:00",
			allowed:   false,
			reason:    "unknown slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, reason := CanExtendSelection(tt.selection, tt.candidate, occupied, entity.DefaultMaxSlots)
			assert.Equal(t, tt.allowed, allowed)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestCanRemoveFromSelection(t *testing.T) {
	selection := []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"}

	assert.True(t, CanRemoveFromSelection(selection, "10:00-11:00"))
	assert.True(t, CanRemoveFromSelection(selection, "12:00-13:00"))

	// Removing the middle would split the run
	assert.False(t, CanRemoveFromSelection(selection, "11:00-12:00"))
	assert.False(t, CanRemoveFromSelection(nil, "10:00-11:00"))
}

func TestAvailability(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow }

	env.createBooking(t, "2026-01-10", []string{"10:00-11:00", "11:00-12:00"})

	avail, err := svc.Availability(ctx, env.fieldID, "2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultMaxSlots, avail.MaxSlots)
	require.Len(t, avail.Slots, entity.SlotCloseHour-entity.SlotOpenHour)

	byLabel := make(map[string]bool)
	for _, slot := range avail.Slots {
		byLabel[slot.Slot] = slot.Occupied
		assert.Equal(t, !slot.Occupied, slot.Bookable)
	}
	assert.True(t, byLabel["10:00-11:00"])
	assert.True(t, byLabel["11:00-12:00"])
	assert.False(t, byLabel["12:00-13:00"])
}

func TestAvailabilityMarksPastSlotsUnbookable(t *testing.T) {
	env := newBookingTestEnv(t)

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow } // 12:00

	avail, err := svc.Availability(context.Background(), env.fieldID, testNow.Format(entity.DateFormat))
	require.NoError(t, err)

	for _, slot := range avail.Slots {
		started := entity.SlotStartHour(slot.Slot) <= testNow.Hour()
		assert.Equal(t, !started, slot.Bookable, slot.Slot)
		// Past slots are unbookable without being reported as reserved
		assert.False(t, slot.Occupied, slot.Slot)
	}
}

func TestAvailabilityCancelledBookingFreesSlots(t *testing.T) {
	env := newBookingTestEnv(t)
	ctx := context.Background()

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow }

	id := env.createBooking(t, "2026-01-10", []string{"10:00-11:00"})
	require.NoError(t, env.svc.Cancel(ctx, id))

	avail, err := svc.Availability(ctx, env.fieldID, "2026-01-10")
	require.NoError(t, err)
	for _, slot := range avail.Slots {
		assert.False(t, slot.Occupied, slot.Slot)
	}
}

func TestValidateSelectionExtension(t *testing.T) {
	env := newBookingTestEnv(t)

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow }

	resp, err := svc.ValidateSelection(context.Background(), &request.ValidateSelectionRequest{
		FieldID:   env.fieldID,
		Date:      "2026-01-10",
		Selection: []string{"11:00-12:00"},
		Candidate: "10:00-11:00",
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, resp.Selection)
}

func TestValidateSelectionRejectsOccupiedCandidate(t *testing.T) {
	env := newBookingTestEnv(t)

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow }

	env.createBooking(t, "2026-01-10", []string{"12:00-13:00"})

	resp, err := svc.ValidateSelection(context.Background(), &request.ValidateSelectionRequest{
		FieldID:   env.fieldID,
		Date:      "2026-01-10",
		Selection: []string{"11:00-12:00"},
		Candidate: "12:00-13:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "slot is not available", resp.Reason)
	assert.Equal(t, []string{"11:00-12:00"}, resp.Selection)
}

func TestValidateSelectionRemoval(t *testing.T) {
	env := newBookingTestEnv(t)

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow }

	// Removing an end slot shrinks the run
	resp, err := svc.ValidateSelection(context.Background(), &request.ValidateSelectionRequest{
		FieldID:   env.fieldID,
		Date:      "2026-01-10",
		Selection: []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"},
		Candidate: "12:00-13:00",
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, resp.Selection)

	// Removing the middle slot is rejected
	resp, err = svc.ValidateSelection(context.Background(), &request.ValidateSelectionRequest{
		FieldID:   env.fieldID,
		Date:      "2026-01-10",
		Selection: []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"},
		Candidate: "11:00-12:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.NotEmpty(t, resp.Reason)
}

func TestValidateSelectionRejectsPastCandidate(t *testing.T) {
	env := newBookingTestEnv(t)

	svc := NewSlotService(env.repo, zap.NewNop()).(*slotService)
	svc.now = func() time.Time { return testNow } // 12:00

	resp, err := svc.ValidateSelection(context.Background(), &request.ValidateSelectionRequest{
		FieldID:   env.fieldID,
		Date:      testNow.Format(entity.DateFormat),
		Selection: []string{"11:00-12:00"},
		Candidate: "10:00-11:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "slot is not available", resp.Reason)
}
