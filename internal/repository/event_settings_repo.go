package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding/guesthub/internal/model"
)

type EventSettingsRepository interface {
	Get(ctx context.Context) (*model.EventSettings, error)
	Save(ctx context.Context, settings *model.EventSettings) error
}

type gormEventSettingsRepository struct {
	db *gorm.DB
}

func NewGormEventSettingsRepository(db *gorm.DB) EventSettingsRepository {
	return &gormEventSettingsRepository{db: db}
}

func (r *gormEventSettingsRepository) Get(ctx context.Context) (*model.EventSettings, error) {
	var settings model.EventSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", model.EventSettingsID).Error; err != nil {
		return nil, translateError(err)
	}
	return &settings, nil
}

// Save upserts the singleton row.
func (r *gormEventSettingsRepository) Save(ctx context.Context, settings *model.EventSettings) error {
	settings.ID = model.EventSettingsID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error
}
