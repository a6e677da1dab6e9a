package repositories

import (
	"headless-cms/models"

	"gorm.io/gorm"
)

type PageRepository interface {
	Create(page *models.Page) error
	GetByID(id uint) (*models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	GetAll() ([]models.Page, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Update(page *models.Page) error
	Delete(id uint) error
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

func (r *pageRepository) GetByID(id uint) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetBySlug(slug string) (*models.Page, error) {
	var page models.Page
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetAll() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("title asc").Find(&pages).Error
	return pages, err
}

func (r *pageRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Page{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

func (r *pageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Page{}, id).Error
}
