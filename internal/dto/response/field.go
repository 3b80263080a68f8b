package response

import (
	"time"

	"field-booking/internal/data/entity"
)

type FieldResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        entity.FieldType `json:"type"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Facilities  []string         `json:"facilities"`
	CreatedAt   time.Time        `json:"created_at"`
}

func FieldToResponse(field *entity.Field) FieldResponse {
	return FieldResponse{
		ID:          field.ID.String(),
		Name:        field.Name,
		Type:        field.Type,
		Description: field.Description,
		Price:       field.Price,
		Image:       field.Image,
		Facilities:  field.Facilities,
		CreatedAt:   field.CreatedAt,
	}
}
