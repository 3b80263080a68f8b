package response

import "field-booking/internal/data/entity"

type UserResponse struct {
	UID      string          `json:"uid"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone,omitempty"`
	PhotoURL string          `json:"photo_url,omitempty"`
	Role     entity.UserRole `json:"role"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UID:      user.UID,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		PhotoURL: user.PhotoURL,
		Role:     user.Role,
	}
}
