package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"headless-cms/access"
	"headless-cms/models"
	"headless-cms/repositories"
	"headless-cms/storage"
	"headless-cms/validators"

	"github.com/google/uuid"
)

// UploadMediaInput describes one incoming binary and its metadata.
type UploadMediaInput struct {
	FileName string
	MimeType string
	Size     int64
	Alt      string
}

type MediaService interface {
	Upload(ctx context.Context, input UploadMediaInput, reader io.Reader, ident *access.Identity) (*models.Media, error)
	GetMedia(id uint) (*models.Media, error)
	ListMedia() ([]models.Media, error)
	UpdateAlt(id uint, alt string, ident *access.Identity) (*models.Media, error)
	Delete(ctx context.Context, id uint, ident *access.Identity) error
}

type mediaService struct {
	mediaRepo repositories.MediaRepository
	backend   storage.Backend
	validate  *validators.Validator
}

func NewMediaService(mediaRepo repositories.MediaRepository, backend storage.Backend, validate *validators.Validator) MediaService {
	return &mediaService{mediaRepo: mediaRepo, backend: backend, validate: validate}
}

func (s *mediaService) Upload(ctx context.Context, input UploadMediaInput, reader io.Reader, ident *access.Identity) (*models.Media, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}
	if input.Alt == "" {
		return nil, errors.New("alt text is required")
	}

	// Videos pass with their own MIME family; everything else must clear the
	// image allow-list.
	if !strings.HasPrefix(input.MimeType, "video/") {
		err := s.validate.ImageFile(&validators.FileInfo{MimeType: input.MimeType, Size: input.Size})
		if err != nil {
			return nil, err
		}
	}

	objectKey := uuid.New().String() + path.Ext(input.FileName)
	if err := s.backend.Upload(ctx, objectKey, input.MimeType, reader); err != nil {
		return nil, err
	}

	media := &models.Media{
		Alt:       input.Alt,
		FileName:  input.FileName,
		MimeType:  input.MimeType,
		Size:      input.Size,
		ObjectKey: objectKey,
		URL:       s.backend.PublicURL(objectKey),
	}
	if err := s.mediaRepo.Create(media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *mediaService) GetMedia(id uint) (*models.Media, error) {
	return s.mediaRepo.GetByID(id)
}

func (s *mediaService) ListMedia() ([]models.Media, error) {
	return s.mediaRepo.GetAll()
}

func (s *mediaService) UpdateAlt(id uint, alt string, ident *access.Identity) (*models.Media, error) {
	if !access.IsAdmin(ident) {
		return nil, ErrForbidden
	}
	if alt == "" {
		return nil, errors.New("alt text is required")
	}

	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	media.Alt = alt
	if err := s.mediaRepo.Update(media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *mediaService) Delete(ctx context.Context, id uint, ident *access.Identity) error {
	if !access.IsAdmin(ident) {
		return ErrForbidden
	}

	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, media.ObjectKey); err != nil {
		return err
	}
	return s.mediaRepo.Delete(media.ID)
}
