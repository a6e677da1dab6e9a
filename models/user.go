package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

// RoleList is stored as a jsonb column so a user can hold several roles.
type RoleList []UserRole

func (r RoleList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RoleList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into RoleList", value)
	}
}

func (r RoleList) Has(role UserRole) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}
	return false
}

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Roles     RoleList       `json:"roles" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) IsAdmin() bool {
	return u.Roles.Has(RoleAdmin)
}
