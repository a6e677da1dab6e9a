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

type PageService interface {
	CreatePage(req models.CreatePageRequest, ident *access.Identity) (*models.Page, error)
	UpdatePage(id uint, req models.UpdatePageRequest, ident *access.Identity) (*models.Page, error)
	GetPages() ([]models.Page, error)
	GetPage(id uint) (*models.Page, error)
	GetPageBySlug(slug string) (*models.Page, error)
	DeletePage(id uint, ident *access.Identity) error
}

type pageService struct {
	pageRepo repositories.PageRepository
	validate *validators.Validator
}

func NewPageService(pageRepo repositories.PageRepository, validate *validators.Validator) PageService {
	return &pageService{pageRepo: pageRepo, validate: validate}
}

func (s *pageService) CreatePage(req models.CreatePageRequest, ident *access.Identity) (*models.Page, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	base := hooks.GenerateSlug(models.OperationCreate, req.Slug, req.Title)
	slug, err := utils.GenerateUniqueSlug(base, func(candidate string) (bool, error) {
		return s.pageRepo.SlugExists(candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	page := &models.Page{
		Title:  req.Title,
		Slug:   slug,
		Layout: req.Layout,
		Meta:   req.Meta,
	}
	if err := s.pageRepo.Create(page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.validate.SlugTaken()
		}
		return nil, err
	}
	return page, nil
}

func (s *pageService) UpdatePage(id uint, req models.UpdatePageRequest, ident *access.Identity) (*models.Page, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := hooks.GenerateSlug(models.OperationUpdate, req.Slug, req.Title)
	if slug != page.Slug {
		taken, err := s.pageRepo.SlugExists(slug, page.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, s.validate.SlugTaken()
		}
		page.Slug = slug
	}

	page.Title = req.Title
	page.Layout = req.Layout
	page.Meta = req.Meta

	if err := s.pageRepo.Update(page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.validate.SlugTaken()
		}
		return nil, err
	}
	return page, nil
}

func (s *pageService) GetPages() ([]models.Page, error) {
	return s.pageRepo.GetAll()
}

func (s *pageService) GetPage(id uint) (*models.Page, error) {
	return s.pageRepo.GetByID(id)
}

func (s *pageService) GetPageBySlug(slug string) (*models.Page, error) {
	return s.pageRepo.GetBySlug(slug)
}

func (s *pageService) DeletePage(id uint, ident *access.Identity) error {
	if !access.IsAdmin(ident) {
		return ErrForbidden
	}
	if _, err := s.pageRepo.GetByID(id); err != nil {
		return err
	}
	return s.pageRepo.Delete(id)
}
