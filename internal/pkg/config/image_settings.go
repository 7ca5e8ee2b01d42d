package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxUploadSize caps a single image upload at 10 MiB
const DefaultMaxUploadSize int64 = 10 << 20

// ImageConnectorSettings selects and configures the object store that holds site images
type ImageConnectorSettings struct {
	Provider      string `mapstructure:"provider" validate:"required,oneof=local azure"`
	PublicBaseURL string `mapstructure:"public_base_url" validate:"required"`
	MaxUploadSize int64  `mapstructure:"max_upload_size" validate:"gte=0"`

	// local
	LocalDir string `mapstructure:"local_dir" validate:"required_if=Provider local"`

	// azure
	ConnectionString string `mapstructure:"connection_string" validate:"required_if=Provider azure"`
	ContainerName    string `mapstructure:"container_name" validate:"required_if=Provider azure"`
}

// Validate checks that all fields in ImageConnectorSettings are valid
func (s *ImageConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ImageConnectorSettings: %w", err)
	}
	return nil
}

// UploadLimit returns the configured upload limit or DefaultMaxUploadSize when unset
func (s *ImageConnectorSettings) UploadLimit() int64 {
	if s.MaxUploadSize <= 0 {
		return DefaultMaxUploadSize
	}
	return s.MaxUploadSize
}
