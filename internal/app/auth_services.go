package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/google/uuid"
)

type authService struct {
	users   users.UserRepository
	revoked users.RevokedTokenRepository
	tokens  users.TokenManager
	hasher  users.PasswordHasher
	logger  logger.Logger
}

// NewAuthService creates a new instance of users.AuthService
func NewAuthService(
	userRepo users.UserRepository,
	revokedRepo users.RevokedTokenRepository,
	tokens users.TokenManager,
	hasher users.PasswordHasher,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		users:   userRepo,
		revoked: revokedRepo,
		tokens:  tokens,
		hasher:  hasher,
		logger:  logger,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(ctx context.Context, email, password string) (*users.Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, users.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			s.logger.Warn("Rejected login", "email", user.Email)
		}
		return nil, err
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", "id", user.ID)
	return &users.Session{Token: token, ExpiresAt: claims.ExpiresAt, User: user}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("token revoked: %w", users.ErrInvalidToken)
	}
	return claims, nil
}

func (s *authService) Logout(ctx context.Context, claims *users.Claims) error {
	if err := s.revoked.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}

	if _, err := s.revoked.PurgeExpired(ctx, time.Now().UTC()); err != nil {
		s.logger.Warn("Failed to purge revoked tokens", "error", err)
	}

	s.logger.Info("User logged out", "id", claims.UserID)
	return nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (*users.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authService) CreateUser(ctx context.Context, email, password, role string) (*users.User, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:              uuid.NewString(),
		Email:           normalizeEmail(email),
		PasswordHash:    hash,
		Role:            role,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) SetPassword(ctx context.Context, email, password string) error {
	if err := checkPassword(password); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return s.users.UpdateByID(ctx, user)
}

func checkPassword(password string) error {
	if len(password) < users.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", users.MinPasswordLength, validators.ErrInvalid)
	}
	return nil
}
