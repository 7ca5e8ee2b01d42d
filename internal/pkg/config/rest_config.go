package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. PORTFOLIO_DATABASE_DSN overrides database.dsn
const EnvPrefix = "portfolio"

// RestConfig is the complete configuration of the REST server and the admin CLI
type RestConfig struct {
	Port           string                 `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string               `mapstructure:"allowed_origins" validate:"min=1,dive,required"`
	Logger         LoggerSettings         `mapstructure:"logger"`
	Database       DatabaseSettings       `mapstructure:"database"`
	Images         ImageConnectorSettings `mapstructure:"images"`
	Auth           AuthSettings           `mapstructure:"auth"`
	Site           SiteSettings           `mapstructure:"site"`
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	return errors.Join(
		c.Logger.Validate(),
		c.Database.Validate(),
		c.Images.Validate(),
		c.Auth.Validate(),
		c.Site.Validate(),
	)
}

func defaults() map[string]any {
	return map[string]any{
		"port":                   "8080",
		"allowed_origins":        []string{"*"},
		"logger.log_level":       LogLevelInfo,
		"logger.log_type":        LogTypeConsole,
		"database.type":          SqliteDbType,
		"database.dsn":           "portfolio.db",
		"images.provider":        LocalImageProvider,
		"images.local_dir":       "./media",
		"images.public_base_url": "/media",
		"images.max_upload_size": DefaultMaxUploadSize,
		"auth.issuer":            "photo-portfolio",
		"auth.token_ttl":         DefaultTokenTTL.String(),
		"site.name":              "Professional Photography",
		"site.default_language":  "fr",
		"site.copyright_holder":  "Professional Photography",
	}
}

// InitializeRestConfig loads the YAML file at configPath (optional when every
// required value comes from the environment), applies environment overrides
// and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	// BindEnv resolves the variable name immediately, so the prefix and
	// replacer must be set first
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// mapstructure only sees keys viper knows about, so env-only values
	// need an explicit binding
	for _, key := range []string{"auth.jwt_secret", "images.connection_string", "images.container_name", "database.name"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
