package entity

import (
	"testing"

	"find-fuel/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestRequires(t *testing.T) {
	admin := &User{Usuario: "root", Role: RoleAdmin}
	user := &User{Usuario: "maria", Role: RoleUser}

	assert.NoError(t, admin.Requires(RoleAdmin))
	assert.ErrorIs(t, user.Requires(RoleAdmin), apperrors.ErrForbidden)
	assert.NoError(t, user.Requires(RoleUser))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}
