package request

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"omitempty,min=9,max=15"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin owner"`
}
