package entity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Daily slot grid: fixed one-hour intervals from open to close
const (
	SlotOpenHour  = 10
	SlotCloseHour = 22
)

// Date format for booking dates
const DateFormat = "2006-01-02"

// DailySlots returns the full slot grid in order, e.g. "10:00-11:00"
func DailySlots() []string {
	slots := make([]string, 0, SlotCloseHour-SlotOpenHour)
	for h := SlotOpenHour; h < SlotCloseHour; h++ {
		slots = append(slots, SlotLabel(h))
	}
	return slots
}

// SlotLabel formats the slot label for a start hour
func SlotLabel(startHour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", startHour, startHour+1)
}

// SlotStartHour parses the start hour of a slot label, -1 if malformed
// or outside the daily grid
func SlotStartHour(slot string) int {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return -1
	}

	hhmm := strings.SplitN(parts[0], ":", 2)
	if len(hhmm) != 2 {
		return -1
	}

	hour, err := strconv.Atoi(hhmm[0])
	if err != nil {
		return -1
	}

	if hour < SlotOpenHour || hour >= SlotCloseHour {
		return -1
	}

	if SlotLabel(hour) != slot {
		return -1
	}

	return hour
}

// SortSlots orders slot labels by start hour in place
func SortSlots(slots []string) {
	sort.Slice(slots, func(i, j int) bool {
		return SlotStartHour(slots[i]) < SlotStartHour(slots[j])
	})
}

// IsContiguous reports whether slots form a gapless run within the daily
// grid. Empty or unknown slots fail.
func IsContiguous(slots []string) bool {
	if len(slots) == 0 {
		return false
	}

	hours := make([]int, len(slots))
	for i, s := range slots {
		h := SlotStartHour(s)
		if h < 0 {
			return false
		}
		hours[i] = h
	}

	sort.Ints(hours)
	for i := 1; i < len(hours); i++ {
		if hours[i] != hours[i-1]+1 {
			return false
		}
	}

	return true
}

// FormatTimeSlot builds the display range for a contiguous run,
// e.g. ["10:00-11:00","11:00-12:00"] -> "10:00 - 12:00"
func FormatTimeSlot(slots []string) string {
	if len(slots) == 0 {
		return ""
	}

	sorted := make([]string, len(slots))
	copy(sorted, slots)
	SortSlots(sorted)

	first := SlotStartHour(sorted[0])
	last := SlotStartHour(sorted[len(sorted)-1])
	if first < 0 || last < 0 {
		return ""
	}

	return fmt.Sprintf("%02d:00 - %02d:00", first, last+1)
}
