package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrAdminNotFound = errors.New("admin not found")
var ErrAdminExists = errors.New("admin with this username or email already exists")

// Admin models an administrator account. PasswordHash is a bcrypt hash and
// is never serialized.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
