package identity

// ErrorResponse is the error envelope returned by the identity service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type updateProfilePayload struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type updateRolePayload struct {
	Role string `json:"role"`
}
