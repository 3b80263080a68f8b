package request

type UpdateSettingsRequest struct {
	PromptPayID    string  `json:"promptpay_id" validate:"required,min=10,max=15"`
	PromptPayName  string  `json:"promptpay_name" validate:"required,min=2,max=100"`
	CustomQR       *string `json:"custom_qr,omitempty"`
	TimeoutMinutes int     `json:"timeout_minutes" validate:"required,min=5,max=1440"`
	MaxSlots       int     `json:"max_slots" validate:"required,min=1,max=12"`
}
