package repositories

import (
	"errors"

	"headless-cms/models"

	"gorm.io/gorm"
)

type SiteRepository interface {
	Get() (*models.SiteSettings, error)
	Save(settings *models.SiteSettings) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

// Get returns the singleton settings row, materializing an empty one on
// first access.
func (r *siteRepository) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, models.SiteSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.SiteSettings{ID: models.SiteSettingsID}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *siteRepository) Save(settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	return r.db.Save(settings).Error
}
