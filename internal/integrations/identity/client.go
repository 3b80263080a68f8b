package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"field-booking/internal/data/entity"

	"go.uber.org/zap"
)

// Client talks to the external identity/document service that owns user
// records. Credential verification, session issuance and password flows
// all live on that side; this client only resolves tokens to users and
// writes profile/role updates.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("integration", "identity")),
	}
}

// Verify resolves a bearer token to the user it belongs to
func (c *Client) Verify(ctx context.Context, token string) (*entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/verify", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	return c.doUserRequest(req)
}

// GetUser fetches the user record for a uid
func (c *Client) GetUser(ctx context.Context, uid string) (*entity.User, error) {
	url := fmt.Sprintf("%s/v1/users/%s", c.baseURL, uid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	return c.doUserRequest(req)
}

// GetUserRole fetches the role for a uid with graceful degradation: any
// failure is logged and the caller gets the plain user role, so a broken
// identity service never blocks public booking flows
func (c *Client) GetUserRole(ctx context.Context, uid string) entity.UserRole {
	user, err := c.GetUser(ctx, uid)
	if err != nil {
		c.log.Error("Identity service unavailable, defaulting role to user",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return entity.RoleUser
	}

	if user.Role == "" {
		return entity.RoleUser
	}

	return user.Role
}

// UpdateProfile writes profile fields for a uid
func (c *Client) UpdateProfile(ctx context.Context, uid, name, phone, photoURL string) (*entity.User, error) {
	url := fmt.Sprintf("%s/v1/users/%s", c.baseURL, uid)

	payload := updateProfilePayload{Name: name, Phone: phone, PhotoURL: photoURL}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.doUserRequest(req)
}

// UpdateRole changes a user's role; only the owner may call this through
// the HTTP layer
func (c *Client) UpdateRole(ctx context.Context, uid string, role entity.UserRole) error {
	url := fmt.Sprintf("%s/v1/users/%s/role", c.baseURL, uid)

	body, err := json.Marshal(updateRolePayload{Role: string(role)})
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrUserNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

func (c *Client) doUserRequest(req *http.Request) (*entity.User, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var user entity.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &user, nil
}
