package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
)

// LocalImageConnector stores images below a directory served by the web server
type LocalImageConnector struct {
	root    string
	baseURL string
	logger  logger.Logger
}

// NewLocalImageConnector creates the root directory if needed
func NewLocalImageConnector(settings *config.ImageConnectorSettings, logger logger.Logger) (*LocalImageConnector, error) {
	if err := os.MkdirAll(settings.LocalDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &LocalImageConnector{
		root:    settings.LocalDir,
		baseURL: settings.PublicBaseURL,
		logger:  logger,
	}, nil
}

// Root is the directory objects are written to
func (c *LocalImageConnector) Root() string {
	return c.root
}

// Upload writes the image to <root>/<folder>/<prefix-uuid.ext>
func (c *LocalImageConnector) Upload(ctx context.Context, folder, prefix string, upload *images.Upload) (*images.Image, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	objectPath := images.ObjectPath(folder, prefix, upload.FileName)
	target := filepath.Join(c.root, filepath.FromSlash(objectPath))

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", objectPath, err)
	}

	written, err := io.Copy(file, upload.Body)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return nil, fmt.Errorf("failed to write %s: %w", objectPath, err)
	}

	c.logger.Info("Stored image", "path", objectPath, "size", written)

	return &images.Image{
		Path:        objectPath,
		URL:         c.PublicURL(objectPath),
		ContentType: upload.ContentType,
		Size:        written,
	}, nil
}

// Delete removes the file at objectPath; a missing file is not an error
func (c *LocalImageConnector) Delete(ctx context.Context, objectPath string) error {
	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err = os.Remove(filepath.Join(c.root, filepath.FromSlash(cleaned)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", cleaned, err)
	}

	c.logger.Info("Deleted image", "path", cleaned)
	return nil
}

// PublicURL returns baseURL/objectPath
func (c *LocalImageConnector) PublicURL(objectPath string) string {
	return joinURL(c.baseURL, objectPath)
}
