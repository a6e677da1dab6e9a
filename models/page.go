package models

import (
	"time"

	"gorm.io/gorm"
)

// SEOMeta is the optional metadata group carried by pages and site settings.
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

type Page struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Title     string         `json:"title" gorm:"not null"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null"`
	Layout    BlockList      `json:"layout" gorm:"type:jsonb"`
	Meta      SEOMeta        `json:"meta" gorm:"embedded;embeddedPrefix:meta_"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
