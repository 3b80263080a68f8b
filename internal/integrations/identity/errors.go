package identity

import "errors"

var (
	// ErrUserNotFound is returned when the identity service has no record
	// for the requested uid
	ErrUserNotFound = errors.New("identity: user not found")

	// ErrUnauthorized is returned for missing, malformed or expired tokens
	ErrUnauthorized = errors.New("identity: token rejected")

	// ErrInternal is returned for client-side failures
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse is returned when the service replies with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
