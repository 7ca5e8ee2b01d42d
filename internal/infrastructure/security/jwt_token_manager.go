package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionClaims is the JWT body of an admin session
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTTokenManager issues HS256 session tokens
type JWTTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokenManager creates a users.TokenManager from the auth settings
func NewJWTTokenManager(settings *config.AuthSettings) (*JWTTokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &JWTTokenManager{
		secret: []byte(settings.JWTSecret),
		issuer: settings.Issuer,
		ttl:    settings.TTL(),
		now:    time.Now,
	}, nil
}

// Issue signs a token for user that expires after the configured TTL
func (m *JWTTokenManager) Issue(user *users.User) (string, *users.Claims, error) {
	now := m.now().UTC()
	claims := &users.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   claims.UserID,
			ID:        claims.TokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		Email: claims.Email,
		Role:  claims.Role,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, claims, nil
}

// Parse verifies signature, issuer and expiry. Every failure wraps users.ErrInvalidToken.
func (m *JWTTokenManager) Parse(token string) (*users.Claims, error) {
	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, mapJWTError(err)
	}

	if parsed.Subject == "" || parsed.ID == "" {
		return nil, fmt.Errorf("token without subject or id: %w", users.ErrInvalidToken)
	}

	return &users.Claims{
		UserID:    parsed.Subject,
		Email:     parsed.Email,
		Role:      parsed.Role,
		TokenID:   parsed.ID,
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
	}, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("token expired: %w", users.ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("token signature is invalid: %w", users.ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("token alg is invalid: %w", users.ErrInvalidToken)
	default:
		return fmt.Errorf("%v: %w", err, users.ErrInvalidToken)
	}
}
