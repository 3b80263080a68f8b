package usecase

import (
	"context"
	"errors"
	"fmt"

	"field-booking/internal/data/entity"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/internal/integrations/identity"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

// UserService fronts the external identity/document service that owns all
// user records; nothing here is persisted locally
type UserService interface {
	Get(ctx context.Context, uid string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, uid string, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// UpdateRole is owner-gated at the HTTP layer
	UpdateRole(ctx context.Context, uid string, req *request.UpdateRoleRequest) error
}

type userService struct {
	identity *identity.Client
	log      *zap.Logger
}

func NewUserService(identityClient *identity.Client, log *zap.Logger) UserService {
	return &userService{
		identity: identityClient,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) Get(ctx context.Context, uid string) (*response.UserResponse, error) {
	user, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, fmt.Errorf("user %s not found", uid)
		}
		s.log.Error("Failed to fetch user from identity service",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return nil, fmt.Errorf("fetch user %s: %w", uid, err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, uid string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.identity.UpdateProfile(ctx, uid, req.Name, req.Phone, req.PhotoURL)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, fmt.Errorf("user %s not found", uid)
		}
		s.log.Error("Failed to update profile via identity service",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return nil, fmt.Errorf("update profile for %s: %w", uid, err)
	}

	s.log.Info("Profile updated", zap.String("uid", uid))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateRole(ctx context.Context, uid string, req *request.UpdateRoleRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update role validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.identity.UpdateRole(ctx, uid, entity.UserRole(req.Role)); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", uid)
		}
		s.log.Error("Failed to update role via identity service",
			zap.Error(err),
			zap.String("uid", uid),
			zap.String("role", req.Role),
		)
		return fmt.Errorf("update role for %s: %w", uid, err)
	}

	s.log.Info("Role updated",
		zap.String("uid", uid),
		zap.String("role", req.Role),
	)

	return nil
}
