package repositories

import (
	"fmt"

	"headless-cms/access"
	"headless-cms/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint, publishedOnly bool) (*models.Post, error)
	GetBySlug(slug string, publishedOnly bool) (*models.Post, error)
	GetList(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint, publishedOnly bool) (*models.Post, error) {
	query := r.db.Preload("Author").Preload("Category").Preload("FeaturedImage")
	if publishedOnly {
		query = query.Scopes(access.ScopePublished)
	}
	var post models.Post
	if err := query.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	query := r.db.Preload("Author").Preload("Category").Preload("FeaturedImage").
		Where("slug = ?", slug)
	if publishedOnly {
		query = query.Scopes(access.ScopePublished)
	}
	var post models.Post
	if err := query.First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetList(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Preload("Author").Preload("Category").Preload("FeaturedImage")

	if publishedOnly {
		query = query.Scopes(access.ScopePublished)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(postOrderClause(params.SortBy, params.SortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&posts).Error

	return posts, total, err
}

// postSortColumns is the ORDER BY allow-list. Sort input comes straight from
// the query string, so anything outside it falls back to created_at instead
// of reaching the SQL.
var postSortColumns = map[string]bool{
	"created_at":   true,
	"published_at": true,
	"title":        true,
}

func postOrderClause(sortBy, sortOrder string) string {
	if !postSortColumns[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return fmt.Sprintf("posts.%s %s", sortBy, sortOrder)
}

// SlugExists is the persistence side of the slug-uniqueness validator. On
// update the document's own id is excluded so a no-op save does not conflict
// with itself. Database errors propagate; there is no soft failure here.
func (r *postRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
