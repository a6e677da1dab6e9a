// Package access holds the authorization predicates. Callers pass an
// explicit Identity built from the authenticated request; there is no global
// request state.
package access

import (
	"gorm.io/gorm"

	"headless-cms/models"
)

// Identity is the authenticated caller as seen by predicates, validators and
// hooks. A nil Identity means an unauthenticated request.
type Identity struct {
	UserID uint
	Roles  models.RoleList
}

func IsAdmin(ident *Identity) bool {
	return ident != nil && ident.Roles.Has(models.RoleAdmin)
}

// Anyone allows unconditionally; used for public-read entities.
func Anyone(_ *Identity) bool { return true }

// PublishedOnly reports whether post reads for this caller must be restricted
// to published documents. Admins see drafts and archived posts too.
func PublishedOnly(ident *Identity) bool {
	return !IsAdmin(ident)
}

// ScopePublished pushes the published-only restriction into the query itself
// rather than filtering after the fetch.
func ScopePublished(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.StatusPublished)
}
