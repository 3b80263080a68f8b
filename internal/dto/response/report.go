package response

type RevenueResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type DashboardSummaryResponse struct {
	TodayRevenue  float64 `json:"today_revenue"`
	TodayBookings int     `json:"today_bookings"`
	PendingCount  int     `json:"pending_count"`
	FieldCount    int     `json:"field_count"`
}

// OccupancyCell is one field/slot pair of the occupancy grid; Booking is
// nil when the slot is free
type OccupancyCell struct {
	FieldID string           `json:"field_id"`
	Slot    string           `json:"slot"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

type OccupancyGridResponse struct {
	Date  string          `json:"date"`
	Cells []OccupancyCell `json:"cells"`
}
