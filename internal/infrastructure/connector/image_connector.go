package connector

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
)

// NewImageConnector returns the connector selected by settings.Provider
func NewImageConnector(ctx context.Context, settings *config.ImageConnectorSettings, logger logger.Logger) (images.ImageConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case config.LocalImageProvider:
		return NewLocalImageConnector(settings, logger)
	case config.AzureImageProvider:
		return NewAzureImageConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", settings.Provider)
	}
}

// cleanObjectPath rejects paths that would escape the store root
func cleanObjectPath(objectPath string) (string, error) {
	cleaned := path.Clean(strings.TrimPrefix(objectPath, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid object path: %q", objectPath)
	}
	return cleaned, nil
}

func joinURL(base, objectPath string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(objectPath, "/")
}
