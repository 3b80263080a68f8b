package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FieldRepository interface {
	FindAll(ctx context.Context) ([]*entity.Field, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Field, error)
	Create(ctx context.Context, field *entity.Field) error
	Update(ctx context.Context, field *entity.Field) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldRepository struct {
	store storage.Store
	mu    sync.Mutex
	log   *zap.Logger
}

func NewFieldRepository(store storage.Store, log *zap.Logger) FieldRepository {
	return &fieldRepository{
		store: store,
		log:   log.With(zap.String("repository", "field")),
	}
}

// load reads the fields collection, seeding the default catalog on the
// very first read
func (r *fieldRepository) load() ([]*entity.Field, error) {
	data, found, err := r.store.Read(CollectionFields)
	if err != nil {
		return nil, fmt.Errorf("load fields: %w", err)
	}
	if !found {
		fields := defaultFields()
		if err := r.save(fields); err != nil {
			return nil, fmt.Errorf("seed default fields: %w", err)
		}
		r.log.Info("Seeded default field catalog", zap.Int("count", len(fields)))
		return fields, nil
	}

	var fields []*entity.Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode fields collection: %w", err)
	}

	return fields, nil
}

func (r *fieldRepository) save(fields []*entity.Field) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields collection: %w", err)
	}

	if err := r.store.Write(CollectionFields, data); err != nil {
		return fmt.Errorf("save fields: %w", err)
	}

	return nil
}

func (r *fieldRepository) FindAll(ctx context.Context) ([]*entity.Field, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields, err := r.load()
	if err != nil {
		r.log.Error("Failed to list fields", zap.Error(err))
		return nil, fmt.Errorf("list fields: %w", err)
	}

	return fields, nil
}

func (r *fieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Field, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields, err := r.load()
	if err != nil {
		r.log.Error("Failed to find field by ID",
			zap.Error(err),
			zap.String("field_id", id.String()),
		)
		return nil, fmt.Errorf("find field by ID %s: %w", id.String(), err)
	}

	for _, field := range fields {
		if field.ID == id {
			return field, nil
		}
	}

	return nil, nil
}

func (r *fieldRepository) Create(ctx context.Context, field *entity.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields, err := r.load()
	if err != nil {
		r.log.Error("Failed to load fields for create", zap.Error(err))
		return err
	}

	fields = append(fields, field)

	if err := r.save(fields); err != nil {
		r.log.Error("Failed to create field",
			zap.Error(err),
			zap.String("field_name", field.Name),
		)
		return fmt.Errorf("create field %s: %w", field.Name, err)
	}

	return nil
}

func (r *fieldRepository) Update(ctx context.Context, field *entity.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields, err := r.load()
	if err != nil {
		r.log.Error("Failed to load fields for update", zap.Error(err))
		return err
	}

	for i, existing := range fields {
		if existing.ID == field.ID {
			fields[i] = field

			if err := r.save(fields); err != nil {
				r.log.Error("Failed to update field",
					zap.Error(err),
					zap.String("field_id", field.ID.String()),
				)
				return fmt.Errorf("update field %s: %w", field.ID.String(), err)
			}

			return nil
		}
	}

	return fmt.Errorf("field %s not found", field.ID.String())
}

// Delete removes the field only; bookings keep their denormalized copy of
// the field name, image and price
func (r *fieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields, err := r.load()
	if err != nil {
		r.log.Error("Failed to load fields for delete", zap.Error(err))
		return err
	}

	for i, existing := range fields {
		if existing.ID == id {
			fields = append(fields[:i], fields[i+1:]...)

			if err := r.save(fields); err != nil {
				r.log.Error("Failed to delete field",
					zap.Error(err),
					zap.String("field_id", id.String()),
				)
				return fmt.Errorf("delete field %s: %w", id.String(), err)
			}

			r.log.Info("Field deleted", zap.String("field_id", id.String()))
			return nil
		}
	}

	return fmt.Errorf("field %s not found", id.String())
}

func defaultFields() []*entity.Field {
	now := time.Now()

	base := func() entity.Base {
		return entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	}

	return []*entity.Field{
		{
			Base:        base(),
			Name:        "Football Field A",
			Type:        entity.FieldTypeFootball,
			Description: "7-a-side artificial turf with floodlights",
			Price:       500,
			Image:       "/images/football-a.jpg",
			Facilities:  []string{"Floodlights", "Changing rooms", "Parking", "Drinking water"},
		},
		{
			Base:        base(),
			Name:        "Badminton Court 1",
			Type:        entity.FieldTypeBadminton,
			Description: "Indoor wooden court, tournament grade",
			Price:       200,
			Image:       "/images/badminton-1.jpg",
			Facilities:  []string{"Air conditioning", "Equipment rental", "Parking"},
		},
		{
			Base:        base(),
			Name:        "Basketball Court",
			Type:        entity.FieldTypeBasketball,
			Description: "Full outdoor court with acrylic surface",
			Price:       300,
			Image:       "/images/basketball.jpg",
			Facilities:  []string{"Floodlights", "Seating", "Drinking water"},
		},
		{
			Base:        base(),
			Name:        "Tennis Court",
			Type:        entity.FieldTypeTennis,
			Description: "Hard court with night lighting",
			Price:       400,
			Image:       "/images/tennis.jpg",
			Facilities:  []string{"Floodlights", "Changing rooms", "Equipment rental"},
		},
	}
}
