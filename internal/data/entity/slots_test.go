package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailySlotsGrid(t *testing.T) {
	slots := DailySlots()

	assert.Len(t, slots, SlotCloseHour-SlotOpenHour)
	assert.Equal(t, "10:00-11:00", slots[0])
	assert.Equal(t, "21:00-22:00", slots[len(slots)-1])
}

func TestSlotStartHour(t *testing.T) {
	assert.Equal(t, 10, SlotStartHour("10:00-11:00"))
	assert.Equal(t, 21, SlotStartHour("21:00-22:00"))

	// Outside the grid
	assert.Equal(t, -1, SlotStartHour("09:00-10:00"))
	assert.Equal(t, -1, SlotStartHour("22:00-23:00"))

	// Malformed
	assert.Equal(t, -1, SlotStartHour("10:00"))
	assert.Equal(t, -1, SlotStartHour("10:00-12:00"))
	assert.Equal(t, -1, SlotStartHour(""))
}

func TestIsContiguous(t *testing.T) {
	assert.True(t, IsContiguous([]string{"10:00-11:00"}))
	assert.True(t, IsContiguous([]string{"10:00-11:00", "11:00-12:00", "12:00-13:00"}))

	// Order must not matter
	assert.True(t, IsContiguous([]string{"12:00-13:00", "10:00-11:00", "11:00-12:00"}))

	// Gaps, duplicates, empties and unknown slots fail
	assert.False(t, IsContiguous([]string{"10:00-11:00", "12:00-13:00"}))
	assert.False(t, IsContiguous([]string{"10:00-11:00", "10:00-11:00"}))
	assert.False(t, IsContiguous(nil))
	assert.False(t, IsContiguous([]string{"25:00-26:00"}))
}

func TestFormatTimeSlot(t *testing.T) {
	assert.Equal(t, "10:00 - 12:00", FormatTimeSlot([]string{"10:00-11:00", "11:00-12:00"}))
	assert.Equal(t, "14:00 - 15:00", FormatTimeSlot([]string{"14:00-15:00"}))
	assert.Equal(t, "10:00 - 13:00", FormatTimeSlot([]string{"12:00-13:00", "10:00-11:00", "11:00-12:00"}))
	assert.Equal(t, "", FormatTimeSlot(nil))
}
