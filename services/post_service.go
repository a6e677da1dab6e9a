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

// slugInsertRetries bounds retries when a concurrent writer claims the chosen
// slug between the uniqueness pre-check and the insert. The unique index is
// the real guarantee; the retry just picks the next free suffix.
const slugInsertRetries = 3

type PostService interface {
	CreatePost(req models.CreatePostRequest, ident *access.Identity) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest, ident *access.Identity) (*models.Post, error)
	GetPost(id uint, ident *access.Identity) (*models.Post, error)
	GetPostBySlug(slug string, ident *access.Identity) (*models.Post, error)
	GetPosts(params models.PostListParams, ident *access.Identity) ([]models.Post, int64, error)
	DeletePost(id uint, ident *access.Identity) error
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	validate     *validators.Validator
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, validate *validators.Validator) PostService {
	return &postService{postRepo: postRepo, categoryRepo: categoryRepo, validate: validate}
}

func (s *postService) CreatePost(req models.CreatePostRequest, ident *access.Identity) (*models.Post, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	if err := s.validate.PostTitle(req.Title); err != nil {
		return nil, err
	}
	if err := s.validate.PostContent(req.Content); err != nil {
		return nil, err
	}
	for _, url := range req.EmbeddedVideos {
		if err := s.validate.VideoURL(url); err != nil {
			return nil, err
		}
	}
	if len(req.EmbeddedVideos) > models.MaxEmbeddedVideos {
		return nil, errors.New("too many embedded videos")
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	videos := make(models.VideoList, 0, len(req.EmbeddedVideos))
	for _, url := range req.EmbeddedVideos {
		videos = append(videos, models.VideoEmbed{URL: url})
	}

	base := hooks.GenerateSlug(models.OperationCreate, req.Slug, req.Title)

	post := &models.Post{
		Title:           req.Title,
		CategoryID:      req.CategoryID,
		Content:         *req.Content,
		Excerpt:         utils.GenerateExcerpt(req.Content.Root.Children, utils.DefaultExcerptLength),
		FeaturedImageID: req.FeaturedImageID,
		EmbeddedVideos:  videos,
		Status:          status,
		PublishedAt:     hooks.StampPublishedDate(status, nil),
		AuthorID:        ident.UserID,
	}

	if err := s.createWithUniqueSlug(post, base); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(post.ID, false)
}

// createWithUniqueSlug resolves a free slug and inserts. A duplicate-key
// error means another writer won the same slug concurrently, so resolve
// again and retry.
func (s *postService) createWithUniqueSlug(post *models.Post, base string) error {
	for attempt := 0; ; attempt++ {
		slug, err := utils.GenerateUniqueSlug(base, func(candidate string) (bool, error) {
			return s.postRepo.SlugExists(candidate, 0)
		})
		if err != nil {
			return err
		}

		post.Slug = slug
		err = s.postRepo.Create(post)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt >= slugInsertRetries {
			return err
		}
	}
}

func (s *postService) UpdatePost(id uint, req models.UpdatePostRequest, ident *access.Identity) (*models.Post, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}

	post, err := s.postRepo.GetByID(id, false)
	if err != nil {
		return nil, err
	}

	if err := s.validate.PostTitle(req.Title); err != nil {
		return nil, err
	}
	if err := s.validate.PostContent(req.Content); err != nil {
		return nil, err
	}
	for _, url := range req.EmbeddedVideos {
		if err := s.validate.VideoURL(url); err != nil {
			return nil, err
		}
	}
	if len(req.EmbeddedVideos) > models.MaxEmbeddedVideos {
		return nil, errors.New("too many embedded videos")
	}

	if req.CategoryID > 0 && req.CategoryID != post.CategoryID {
		if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = req.CategoryID
	}

	slug := hooks.GenerateSlug(models.OperationUpdate, req.Slug, req.Title)
	if slug != post.Slug {
		taken, err := s.postRepo.SlugExists(slug, post.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, s.validate.SlugTaken()
		}
		post.Slug = slug
	}

	status := req.Status
	if status == "" {
		status = post.Status
	}

	videos := make(models.VideoList, 0, len(req.EmbeddedVideos))
	for _, url := range req.EmbeddedVideos {
		videos = append(videos, models.VideoEmbed{URL: url})
	}

	post.Title = req.Title
	post.Content = *req.Content
	post.Excerpt = utils.GenerateExcerpt(req.Content.Root.Children, utils.DefaultExcerptLength)
	post.FeaturedImageID = req.FeaturedImageID
	post.EmbeddedVideos = videos
	post.Status = status
	post.PublishedAt = hooks.StampPublishedDate(status, post.PublishedAt)
	// AuthorID stays as created; the author reference is immutable.

	if err := s.postRepo.Update(post); err != nil {
		// A concurrent writer can claim the slug between the pre-check and
		// the save; surface that like any other slug conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.validate.SlugTaken()
		}
		return nil, err
	}

	return s.postRepo.GetByID(post.ID, false)
}

func (s *postService) GetPost(id uint, ident *access.Identity) (*models.Post, error) {
	return s.postRepo.GetByID(id, access.PublishedOnly(ident))
}

func (s *postService) GetPostBySlug(slug string, ident *access.Identity) (*models.Post, error) {
	return s.postRepo.GetBySlug(slug, access.PublishedOnly(ident))
}

func (s *postService) GetPosts(params models.PostListParams, ident *access.Identity) ([]models.Post, int64, error) {
	return s.postRepo.GetList(params, access.PublishedOnly(ident))
}

func (s *postService) DeletePost(id uint, ident *access.Identity) error {
	if !access.IsAdmin(ident) {
		return ErrForbidden
	}
	if _, err := s.postRepo.GetByID(id, false); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}
