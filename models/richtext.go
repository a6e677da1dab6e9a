package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RichTextNode is one node of the editor's document tree. Leaves carry text,
// containers carry children; a node may carry both.
type RichTextNode struct {
	Type     string         `json:"type,omitempty"`
	Text     string         `json:"text,omitempty"`
	Children []RichTextNode `json:"children,omitempty"`
}

// RichText is the structured document stored for post bodies and rich-content
// page blocks. Persisted as jsonb.
type RichText struct {
	Root RichTextNode `json:"root"`
}

func (rt RichText) Value() (driver.Value, error) {
	return json.Marshal(rt)
}

func (rt *RichText) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, rt)
	case string:
		return json.Unmarshal([]byte(v), rt)
	case nil:
		*rt = RichText{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into RichText", value)
	}
}
