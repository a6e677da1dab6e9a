package models

import (
	"time"

	"gorm.io/gorm"
)

// Media is the stored record of an uploaded binary. The payload itself lives
// in object storage under ObjectKey; URL is the public location handed to
// frontends.
type Media struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Alt       string         `json:"alt" gorm:"not null"`
	FileName  string         `json:"file_name" gorm:"not null"`
	MimeType  string         `json:"mime_type" gorm:"not null"`
	Size      int64          `json:"size"`
	ObjectKey string         `json:"-" gorm:"not null"`
	URL       string         `json:"url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
