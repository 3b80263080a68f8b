package request

type CreateFieldRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Type        string   `json:"type" validate:"required,oneof=football badminton basketball tennis"`
	Description string   `json:"description" validate:"max=500"`
	Price       float64  `json:"price" validate:"required,min=1"`
	Image       string   `json:"image"`
	Facilities  []string `json:"facilities"`
}

type UpdateFieldRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Type        string   `json:"type" validate:"required,oneof=football badminton basketball tennis"`
	Description string   `json:"description" validate:"max=500"`
	Price       float64  `json:"price" validate:"required,min=1"`
	Image       string   `json:"image"`
	Facilities  []string `json:"facilities"`
}
