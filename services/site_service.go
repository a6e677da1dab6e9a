package services

import (
	"headless-cms/access"
	"headless-cms/models"
	"headless-cms/repositories"
)

type SiteService interface {
	GetSettings() (*models.SiteSettings, error)
	UpdateSettings(req models.UpdateSiteSettingsRequest, ident *access.Identity) (*models.SiteSettings, error)
}

type siteService struct {
	siteRepo repositories.SiteRepository
	postRepo repositories.PostRepository
}

func NewSiteService(siteRepo repositories.SiteRepository, postRepo repositories.PostRepository) SiteService {
	return &siteService{siteRepo: siteRepo, postRepo: postRepo}
}

func (s *siteService) GetSettings() (*models.SiteSettings, error) {
	return s.siteRepo.Get()
}

func (s *siteService) UpdateSettings(req models.UpdateSiteSettingsRequest, ident *access.Identity) (*models.SiteSettings, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	// Curated references must point at real posts.
	for _, postID := range req.FeaturedPostIDs {
		if _, err := s.postRepo.GetByID(postID, false); err != nil {
			return nil, err
		}
	}

	settings, err := s.siteRepo.Get()
	if err != nil {
		return nil, err
	}

	settings.FeaturedPostIDs = models.IDList(req.FeaturedPostIDs)
	settings.Meta = models.SEOMeta{
		Title:       req.MetaTitle,
		Description: req.MetaDescription,
		Keywords:    req.MetaKeywords,
	}

	if err := s.siteRepo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
