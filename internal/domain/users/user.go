package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// Roles
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 12

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for malformed, expired or revoked session tokens.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrForbidden is returned when the session role may not use the admin panel.
	ErrForbidden = errors.New("admin role required")
	// ErrEmailTaken is returned when creating a user whose email already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// User entity
type User struct {
	ID              string    `validate:"required,uuid4"`
	Email           string    `validate:"required,email,max=255"`
	PasswordHash    string    `validate:"required"`
	Role            string    `validate:"required,oneof=admin viewer"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	if err := validators.Struct(u); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}

// IsAdmin reports whether the user may manage site content
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Claims is what a verified session token says about its holder
type Claims struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// Session is returned on login
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
