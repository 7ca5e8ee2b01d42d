package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SiteSettings holds the presentation settings of the public pages
type SiteSettings struct {
	Name            string `mapstructure:"name" validate:"required"`
	DefaultLanguage string `mapstructure:"default_language" validate:"required,oneof=fr en"`
	HeroImageURL    string `mapstructure:"hero_image_url"`
	CopyrightHolder string `mapstructure:"copyright_holder"`
}

// Validate checks that all fields in SiteSettings are valid
func (s *SiteSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SiteSettings: %w", err)
	}
	return nil
}
