package usecase

import (
	"context"
	"fmt"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingsService interface {
	Get(ctx context.Context) (*response.SettingsResponse, error)

	// Update overwrites the settings singleton wholesale (admin only)
	Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error)
}

type settingsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSettingsService(repo *repository.Repository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) Get(ctx context.Context) (*response.SettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.log.Error("Failed to read settings", zap.Error(err))
		return nil, fmt.Errorf("read settings: %w", err)
	}

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}

func (s *settingsService) Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update settings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	settings := &entity.Settings{
		PromptPayID:    req.PromptPayID,
		PromptPayName:  req.PromptPayName,
		CustomQR:       req.CustomQR,
		TimeoutMinutes: req.TimeoutMinutes,
		MaxSlots:       req.MaxSlots,
		UpdatedAt:      time.Now(),
	}

	if err := s.repo.Settings.Save(ctx, settings); err != nil {
		s.log.Error("Failed to save settings", zap.Error(err))
		return nil, fmt.Errorf("save settings: %w", err)
	}

	s.log.Info("Settings updated",
		zap.Int("timeout_minutes", settings.TimeoutMinutes),
		zap.Int("max_slots", settings.MaxSlots),
	)

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}
