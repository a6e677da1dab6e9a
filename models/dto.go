package models

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePostRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	CategoryID      uint       `json:"category_id" binding:"required"`
	Content         *RichText  `json:"content"`
	FeaturedImageID *uint      `json:"featured_image_id"`
	EmbeddedVideos  []string   `json:"embedded_videos"`
	Status          PostStatus `json:"status"`
}

type UpdatePostRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	CategoryID      uint       `json:"category_id"`
	Content         *RichText  `json:"content"`
	FeaturedImageID *uint      `json:"featured_image_id"`
	EmbeddedVideos  []string   `json:"embedded_videos"`
	Status          PostStatus `json:"status"`
}

type PostListParams struct {
	Status     string `form:"status"`
	CategoryID uint   `form:"category_id"`
	AuthorID   uint   `form:"author_id"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}

type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100"`
	Slug  string `json:"slug"`
}

type CreatePageRequest struct {
	Title  string    `json:"title" binding:"required"`
	Slug   string    `json:"slug"`
	Layout BlockList `json:"layout"`
	Meta   SEOMeta   `json:"meta"`
}

type UpdatePageRequest struct {
	Title  string    `json:"title"`
	Slug   string    `json:"slug"`
	Layout BlockList `json:"layout"`
	Meta   SEOMeta   `json:"meta"`
}

// UpdateSiteSettingsRequest is validated with the struct validator wired into
// the HTTP helper, so field errors come back translated per field.
type UpdateSiteSettingsRequest struct {
	FeaturedPostIDs []uint `json:"featured_post_ids" validate:"max=12,dive,min=1"`
	MetaTitle       string `json:"meta_title" validate:"max=200"`
	MetaDescription string `json:"meta_description" validate:"max=500"`
	MetaKeywords    string `json:"meta_keywords" validate:"max=500"`
}
