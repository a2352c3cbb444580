package repository

import (
	"context"

	"github.com/treemarket/treemarket-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	// EnsureDefaults writes the default singleton row if none exists yet.
	// Safe to call concurrently; the fixed primary key makes the insert a
	// no-op when the row is already present.
	EnsureDefaults(ctx context.Context) (*model.SiteSettings, error)
	Upsert(ctx context.Context, settings *model.SiteSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	var settings model.SiteSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", model.SiteSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) EnsureDefaults(ctx context.Context) (*model.SiteSettings, error) {
	defaults := model.DefaultSiteSettings()
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(defaults).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *model.SiteSettings) error {
	settings.ID = model.SiteSettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
