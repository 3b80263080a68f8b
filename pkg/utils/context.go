package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

// GetUserIDFromContext returns the identity-service uid set by the auth middleware
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	uidVal := ctx.Value(UserIDKey)
	if uidVal == nil {
		return "", false
	}

	uid, ok := uidVal.(string)
	if !ok || uid == "" {
		return "", false
	}

	return uid, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetUserContext(ctx context.Context, uid string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, uid)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
