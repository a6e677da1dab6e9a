package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

// MaxEmbeddedVideos caps the embedded video list per post.
const MaxEmbeddedVideos = 5

type VideoEmbed struct {
	URL string `json:"url"`
}

type VideoList []VideoEmbed

func (v VideoList) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *VideoList) Scan(value interface{}) error {
	switch src := value.(type) {
	case []byte:
		return json.Unmarshal(src, v)
	case string:
		return json.Unmarshal([]byte(src), v)
	case nil:
		*v = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into VideoList", value)
	}
}

type Post struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	Title           string         `json:"title" gorm:"not null"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;not null"`
	CategoryID      uint           `json:"category_id" gorm:"not null"`
	Category        Category       `json:"category" gorm:"foreignKey:CategoryID"`
	Content         RichText       `json:"content" gorm:"type:jsonb"`
	Excerpt         string         `json:"excerpt"`
	FeaturedImageID *uint          `json:"featured_image_id"`
	FeaturedImage   *Media         `json:"featured_image,omitempty" gorm:"foreignKey:FeaturedImageID"`
	EmbeddedVideos  VideoList      `json:"embedded_videos" gorm:"type:jsonb"`
	Status          PostStatus     `json:"status" gorm:"default:'draft'"`
	PublishedAt     *time.Time     `json:"published_at"`
	AuthorID        uint           `json:"author_id" gorm:"not null"`
	Author          User           `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}
