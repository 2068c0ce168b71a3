package models

import (
	"strings"
	"time"
)

// User is an employee or manager account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ManagerID    *int64    `json:"manager_id,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsManager reports whether the user may read team reports.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// NormalizeEmail lower-cases and trims an address so logins are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
