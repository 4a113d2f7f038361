package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a moderator identity resolved from the admin_users table.
// Regular map visitors never have one; a missing row simply means
// "authenticated but not staff".
type AdminUser struct {
	UserID       uuid.UUID // Stable identity from the auth provider.
	Email        string    // Login identifier.
	Role         Role      // The privilege tier of this account.
	PasswordHash string    // bcrypt hash, never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Role represents the privilege tier of an administrative account.
type Role string

const (
	// RoleAdmin has full mutation rights, including irreversible deletion.
	RoleAdmin Role = "admin"
	// RoleReviewer may edit, verify and toggle status, but not delete.
	RoleReviewer Role = "reviewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReviewer:
		return true
	default:
		return false
	}
}

// CanDelete reports whether the role may perform irreversible deletion.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// CanModerate reports whether the role may edit, verify or change status.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleReviewer
}
