package services

import (
	"errors"

	"headless-cms/access"
	"headless-cms/hooks"
	"headless-cms/models"
	"headless-cms/repositories"
	"headless-cms/utils"
	"headless-cms/validators"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest, ident *access.Identity) (*models.Category, error)
	UpdateCategory(id uint, req models.CreateCategoryRequest, ident *access.Identity) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	DeleteCategory(id uint, ident *access.Identity) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	validate     *validators.Validator
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, validate *validators.Validator) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, validate: validate}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest, ident *access.Identity) (*models.Category, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	base := hooks.GenerateSlug(models.OperationCreate, req.Slug, req.Title)
	slug, err := utils.GenerateUniqueSlug(base, func(candidate string) (bool, error) {
		return s.categoryRepo.SlugExists(candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	category := &models.Category{Title: req.Title, Slug: slug}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.validate.SlugTaken()
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.CreateCategoryRequest, ident *access.Identity) (*models.Category, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := hooks.GenerateSlug(models.OperationUpdate, req.Slug, req.Title)
	if slug != category.Slug {
		taken, err := s.categoryRepo.SlugExists(slug, category.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, s.validate.SlugTaken()
		}
		category.Slug = slug
	}

	category.Title = req.Title
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.validate.SlugTaken()
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *categoryService) DeleteCategory(id uint, ident *access.Identity) error {
	if !access.IsAdmin(ident) {
		return ErrForbidden
	}
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}
