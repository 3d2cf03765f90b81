package entity

import "find-fuel/pkg/apperrors"

// Role is the closed set of permission tiers.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Base
	Usuario      string `db:"usuario"` // unique login handle
	Nome         string `db:"nome"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}

// Requires checks that the user holds the given role.
func (u *User) Requires(role Role) error {
	if u.Role != role {
		return apperrors.ErrForbidden
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
