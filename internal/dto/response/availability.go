package response

// SlotAvailability describes one slot of the daily grid for a field/date.
// A slot already in the past for today is not bookable without counting
// as occupied.
type SlotAvailability struct {
	Slot     string `json:"slot"`
	Occupied bool   `json:"occupied"`
	Bookable bool   `json:"bookable"`
}

type AvailabilityResponse struct {
	FieldID  string             `json:"field_id"`
	Date     string             `json:"date"`
	MaxSlots int                `json:"max_slots"`
	Slots    []SlotAvailability `json:"slots"`
}

type SelectionResponse struct {
	Allowed   bool     `json:"allowed"`
	Reason    string   `json:"reason,omitempty"`
	Selection []string `json:"selection"`
}
