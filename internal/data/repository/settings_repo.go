package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"field-booking/internal/data/entity"
	"field-booking/pkg/storage"

	"go.uber.org/zap"
)

type SettingsRepository interface {
	// Get returns the settings singleton, creating it with defaults on
	// first read
	Get(ctx context.Context) (*entity.Settings, error)

	// Save overwrites the settings singleton wholesale
	Save(ctx context.Context, settings *entity.Settings) error
}

type settingsRepository struct {
	store storage.Store
	mu    sync.Mutex
	log   *zap.Logger
}

func NewSettingsRepository(store storage.Store, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		store: store,
		log:   log.With(zap.String("repository", "settings")),
	}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, found, err := r.store.Read(CollectionSettings)
	if err != nil {
		r.log.Error("Failed to read settings", zap.Error(err))
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if !found {
		settings := entity.DefaultSettings()
		if err := r.persist(settings); err != nil {
			return nil, fmt.Errorf("seed default settings: %w", err)
		}
		r.log.Info("Seeded default settings")
		return settings, nil
	}

	var settings entity.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.persist(settings); err != nil {
		r.log.Error("Failed to save settings", zap.Error(err))
		return err
	}

	return nil
}

func (r *settingsRepository) persist(settings *entity.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := r.store.Write(CollectionSettings, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
