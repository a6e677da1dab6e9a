package access

import (
	"testing"

	"headless-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin(&Identity{UserID: 1}))
	assert.False(t, IsAdmin(&Identity{UserID: 1, Roles: models.RoleList{models.RoleEditor}}))
	assert.True(t, IsAdmin(&Identity{UserID: 1, Roles: models.RoleList{models.RoleAdmin}}))
	assert.True(t, IsAdmin(&Identity{UserID: 1, Roles: models.RoleList{models.RoleEditor, models.RoleAdmin}}))
}

func TestAnyone(t *testing.T) {
	assert.True(t, Anyone(nil))
	assert.True(t, Anyone(&Identity{UserID: 7}))
}

func TestPublishedOnly(t *testing.T) {
	// Anonymous and editors are restricted to published content, admins see all.
	assert.True(t, PublishedOnly(nil))
	assert.True(t, PublishedOnly(&Identity{UserID: 1, Roles: models.RoleList{models.RoleEditor}}))
	assert.False(t, PublishedOnly(&Identity{UserID: 1, Roles: models.RoleList{models.RoleAdmin}}))
}
