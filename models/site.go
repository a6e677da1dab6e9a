package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into IDList", value)
	}
}

// SiteSettings is a singleton document: curated posts for layout placement
// plus site-wide SEO metadata. Exactly one row exists, keyed by SiteSettingsID.
type SiteSettings struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	FeaturedPostIDs IDList    `json:"featured_post_ids" gorm:"type:jsonb"`
	Meta            SEOMeta   `json:"meta" gorm:"embedded;embeddedPrefix:meta_"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const SiteSettingsID uint = 1
