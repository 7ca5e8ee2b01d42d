package app

import (
	"context"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
)

// storedPath returns the object path of an image, recovering it from the URL
// for rows saved before paths were recorded
func storedPath(objectPath, publicURL string) string {
	if objectPath != "" {
		return objectPath
	}
	if publicURL == "" {
		return ""
	}
	return images.PathFromURL(publicURL)
}

// discardImage deletes an object whose row was not or is no longer saved.
// Failures are logged only.
func discardImage(ctx context.Context, connector images.ImageConnector, log logger.Logger, objectPath string) {
	if objectPath == "" {
		return
	}
	if err := connector.Delete(ctx, objectPath); err != nil {
		log.Warn("Failed to delete image", "path", objectPath, "error", err)
	}
}
