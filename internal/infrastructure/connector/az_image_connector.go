package connector

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureImageConnector stores images as block blobs in one container
type AzureImageConnector struct {
	client        *azblob.Client
	containerName string
	baseURL       string
	logger        logger.Logger
}

// NewAzureImageConnector connects with the settings' connection string and
// creates the container when it does not exist yet
func NewAzureImageConnector(ctx context.Context, settings *config.ImageConnectorSettings, logger logger.Logger) (*AzureImageConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureImageConnector{
		client:        client,
		containerName: settings.ContainerName,
		baseURL:       settings.PublicBaseURL,
		logger:        logger,
	}, nil
}

// Upload streams the image into <folder>/<prefix-uuid.ext>
func (c *AzureImageConnector) Upload(ctx context.Context, folder, prefix string, upload *images.Upload) (*images.Image, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}

	objectPath := images.ObjectPath(folder, prefix, upload.FileName)
	contentType := upload.ContentType

	_, err := c.client.UploadStream(ctx, c.containerName, objectPath, upload.Body, &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}

	c.logger.Info("Uploaded image", "container", c.containerName, "path", objectPath)

	return &images.Image{
		Path:        objectPath,
		URL:         c.PublicURL(objectPath),
		ContentType: contentType,
		Size:        upload.Size,
	}, nil
}

// Delete removes the blob at objectPath; a missing blob is not an error
func (c *AzureImageConnector) Delete(ctx context.Context, objectPath string) error {
	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}

	_, err = c.client.DeleteBlob(ctx, c.containerName, cleaned, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob %s: %w", cleaned, err)
	}

	c.logger.Info("Deleted image", "container", c.containerName, "path", cleaned)
	return nil
}

// PublicURL returns baseURL/objectPath
func (c *AzureImageConnector) PublicURL(objectPath string) string {
	return joinURL(c.baseURL, objectPath)
}
