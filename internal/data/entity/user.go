package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
	RoleOwner UserRole = "owner"
)

// User is owned by the external identity service; it is only read and
// cached here, never persisted locally
type User struct {
	UID      string   `json:"uid"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	PhotoURL string   `json:"photo_url"`
	Role     UserRole `json:"role"`
}

// IsAdmin returns true for roles allowed into the admin dashboard
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}
