package repository

import (
	"hostel-be-svc/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository defines the interface for global settings data operations
type SettingsRepository interface {
	GetSettings() (*models.Settings, error)
	SaveSettings(settings *models.Settings) error
}

// settingsRepository implements SettingsRepository
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetSettings retrieves the latest published settings row
func (r *settingsRepository) GetSettings() (*models.Settings, error) {
	var settings models.Settings

	err := r.db.Where("published_at IS NOT NULL").Order("id DESC").First(&settings).Error
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// SaveSettings inserts or updates the settings row
func (r *settingsRepository) SaveSettings(settings *models.Settings) error {
	return r.db.Save(settings).Error
}
