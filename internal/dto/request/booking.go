package request

type CreateBookingRequest struct {
	FieldID       string   `json:"field_id" validate:"required,uuid4"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slots         []string `json:"slots" validate:"required,min=1"`
	CustomerName  string   `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone string   `json:"customer_phone" validate:"required,min=9,max=15"`
}

type AttachSlipRequest struct {
	// Slip is the payment slip image as a data URI, embedded as-is
	Slip string `json:"slip" validate:"required"`
}

type ValidateSelectionRequest struct {
	FieldID   string   `json:"field_id" validate:"required,uuid4"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	Selection []string `json:"selection"`
	Candidate string   `json:"candidate" validate:"required"`
}
