package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTokenTTL is the lifetime of an admin session token
const DefaultTokenTTL = 12 * time.Hour

// AuthSettings configures admin session tokens
type AuthSettings struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer    string        `mapstructure:"issuer" validate:"required"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"gte=0"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// TTL returns the configured token lifetime, falling back to DefaultTokenTTL
func (s *AuthSettings) TTL() time.Duration {
	if s.TokenTTL <= 0 {
		return DefaultTokenTTL
	}
	return s.TokenTTL
}
