package domain

import (
	"slices"
	"time"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Permissions  []string `json:"permissions"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// HasPermission reports whether the user holds the named permission.
func (u User) HasPermission(permission string) bool {
	return slices.Contains(u.Permissions, permission)
}
