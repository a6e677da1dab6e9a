// Package hooks holds the pure field hooks the services run during writes.
// The first-admin promotion hook is not here: it is a single conditional
// UPDATE in the user repository so the count-then-promote race cannot occur.
package hooks

import (
	"time"

	"headless-cms/models"
	"headless-cms/utils"
)

// GenerateSlug derives a slug from the sibling title on create, or on update
// when the incoming value is empty; otherwise the value passes through
// unchanged. Uniqueness is a separate concern layered on top.
func GenerateSlug(op models.Operation, value, title string) string {
	if op == models.OperationCreate || (op == models.OperationUpdate && value == "") {
		if title != "" {
			return utils.Slugify(title)
		}
	}
	return value
}

// StampPublishedDate keeps the publication date a status-derived field:
// publishing stamps the current time once, leaving published keeps the
// existing stamp, and any other status clears it.
func StampPublishedDate(status models.PostStatus, current *time.Time) *time.Time {
	if status != models.StatusPublished {
		return nil
	}
	if current == nil {
		now := time.Now()
		return &now
	}
	return current
}
