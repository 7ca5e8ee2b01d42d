package users

import (
	"context"
	"time"
)

// AuthService authenticates admins and manages their accounts.
type AuthService interface {
	// Login checks the credentials and issues a session token.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Authenticate verifies a session token and returns its claims.
	// Revoked or expired tokens yield ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (*Claims, error)

	// Logout revokes the session described by claims until it expires.
	Logout(ctx context.Context, claims *Claims) error

	// GetUser returns the account behind a session.
	GetUser(ctx context.Context, userID string) (*User, error)

	// CreateUser registers an account with the given role.
	CreateUser(ctx context.Context, email, password, role string) (*User, error)

	// SetPassword replaces the password of the account registered under email.
	SetPassword(ctx context.Context, email, password string) error
}

// TokenManager issues and verifies signed session tokens
type TokenManager interface {
	Issue(user *User) (string, *Claims, error)
	Parse(token string) (*Claims, error)
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
}

// RevokedTokenRepository remembers logged out tokens until they expire
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
