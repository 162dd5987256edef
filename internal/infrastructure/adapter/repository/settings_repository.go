package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/model"
)

// SettingsRepository implements SettingsRepository interface using GORM
type SettingsRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	errorClassifier *ErrorClassifier
}

// NewSettingsRepository creates a new SettingsRepository instance
func NewSettingsRepository(db *gorm.DB, timeProvider coreport.TimeProvider) *SettingsRepository {
	return &SettingsRepository{
		db:              db,
		timeProvider:    timeProvider,
		errorClassifier: NewErrorClassifier(),
	}
}

// ImageURLs returns the whole key -> URL map
func (r *SettingsRepository) ImageURLs(ctx context.Context) (map[string]string, error) {
	var rows []model.ImageSetting
	if err := conn(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, "image settings")
	}

	images := make(map[string]string, len(rows))
	for _, row := range rows {
		images[row.Key] = row.URL
	}
	return images, nil
}

// SetImageURL creates or replaces one entry
func (r *SettingsRepository) SetImageURL(ctx context.Context, key, url string) error {
	row := model.ImageSetting{Key: key, URL: url, UpdatedAt: r.timeProvider.Now()}
	err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "updated_at"}),
	}).Create(&row).Error
	return r.errorClassifier.Translate(err, nil, nil, key)
}

// DeleteImageURL removes one entry; removing a missing key is not an error
func (r *SettingsRepository) DeleteImageURL(ctx context.Context, key string) error {
	err := conn(ctx, r.db).Where("key = ?", key).Delete(&model.ImageSetting{}).Error
	return r.errorClassifier.Translate(err, nil, nil, key)
}
