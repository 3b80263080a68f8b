package middleware

import (
	"errors"
	"net/http"
	"strings"

	"field-booking/internal/data/entity"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token against the identity service and puts
// the resolved uid and role on the request context
func Auth(identityClient *identity.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			user, err := identityClient.Verify(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, identity.ErrUnauthorized) || errors.Is(err, identity.ErrUserNotFound) {
					logger.Warn("Token rejected by identity service", zap.Error(err))
					utils.ResponseUnauthorized(w, "Invalid or expired token")
					return
				}

				logger.Error("Failed to verify token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.UID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the admin or owner role set by Auth
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleAdmin) && role != string(entity.RoleOwner) {
				uid, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("uid", uid),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Owner requires the owner role; role management stays with the owner
func Owner(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleOwner) {
				uid, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Owner check: access attempt without owner role",
					zap.String("uid", uid),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Owner access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
