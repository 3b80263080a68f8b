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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FieldService interface {
	List(ctx context.Context) ([]response.FieldResponse, error)
	Get(ctx context.Context, fieldID string) (*response.FieldResponse, error)

	// Admin endpoints
	Create(ctx context.Context, req *request.CreateFieldRequest) (*response.FieldResponse, error)
	Update(ctx context.Context, fieldID string, req *request.UpdateFieldRequest) (*response.FieldResponse, error)
	Delete(ctx context.Context, fieldID string) error
}

type fieldService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFieldService(repo *repository.Repository, log *zap.Logger) FieldService {
	return &fieldService{
		repo: repo,
		log:  log.With(zap.String("service", "field")),
	}
}

func (s *fieldService) List(ctx context.Context) ([]response.FieldResponse, error) {
	fields, err := s.repo.Field.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list fields", zap.Error(err))
		return nil, fmt.Errorf("list fields: %w", err)
	}

	responses := make([]response.FieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = response.FieldToResponse(field)
	}

	return responses, nil
}

func (s *fieldService) Get(ctx context.Context, fieldID string) (*response.FieldResponse, error) {
	field, err := s.findField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	resp := response.FieldToResponse(field)
	return &resp, nil
}

func (s *fieldService) Create(ctx context.Context, req *request.CreateFieldRequest) (*response.FieldResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create field validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	field := &entity.Field{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Type:        entity.FieldType(req.Type),
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Facilities:  req.Facilities,
	}

	if err := s.repo.Field.Create(ctx, field); err != nil {
		s.log.Error("Failed to create field",
			zap.Error(err),
			zap.String("field_name", req.Name),
		)
		return nil, fmt.Errorf("create field: %w", err)
	}

	s.log.Info("Field created",
		zap.String("field_id", field.ID.String()),
		zap.String("field_name", field.Name),
		zap.String("field_type", string(field.Type)),
		zap.Float64("price", field.Price),
	)

	resp := response.FieldToResponse(field)
	return &resp, nil
}

func (s *fieldService) Update(ctx context.Context, fieldID string, req *request.UpdateFieldRequest) (*response.FieldResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update field validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	field, err := s.findField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	field.Name = req.Name
	field.Type = entity.FieldType(req.Type)
	field.Description = req.Description
	field.Price = req.Price
	field.Image = req.Image
	field.Facilities = req.Facilities
	field.UpdatedAt = time.Now()

	if err := s.repo.Field.Update(ctx, field); err != nil {
		s.log.Error("Failed to update field",
			zap.Error(err),
			zap.String("field_id", fieldID),
		)
		return nil, fmt.Errorf("update field %s: %w", fieldID, err)
	}

	s.log.Info("Field updated",
		zap.String("field_id", fieldID),
		zap.String("field_name", field.Name),
	)

	resp := response.FieldToResponse(field)
	return &resp, nil
}

// Delete removes the field without touching bookings that reference it;
// they keep their denormalized copy of the field data
func (s *fieldService) Delete(ctx context.Context, fieldID string) error {
	id, err := uuid.Parse(fieldID)
	if err != nil {
		return fmt.Errorf("invalid field ID format %s: %w", fieldID, err)
	}

	if err := s.repo.Field.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}

func (s *fieldService) findField(ctx context.Context, fieldID string) (*entity.Field, error) {
	id, err := uuid.Parse(fieldID)
	if err != nil {
		return nil, fmt.Errorf("invalid field ID format %s: %w", fieldID, err)
	}

	field, err := s.repo.Field.FindByID(ctx, id)
	if err != nil || field == nil {
		return nil, fmt.Errorf("field %s not found", fieldID)
	}

	return field, nil
}
