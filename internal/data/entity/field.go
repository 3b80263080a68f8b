package entity

type FieldType string

const (
	FieldTypeFootball   FieldType = "football"
	FieldTypeBadminton  FieldType = "badminton"
	FieldTypeBasketball FieldType = "basketball"
	FieldTypeTennis     FieldType = "tennis"
)

type Field struct {
	Base
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // per hour
	Image       string    `json:"image"`
	Facilities  []string  `json:"facilities"`
}
