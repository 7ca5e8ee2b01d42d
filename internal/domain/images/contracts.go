package images

import "context"

// ImageConnector is an interface for interacting with the image object store
type ImageConnector interface {
	// Upload stores the image under a new path inside folder and returns where it lives.
	Upload(ctx context.Context, folder, prefix string, upload *Upload) (*Image, error)

	// Delete removes the object at path. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error

	// PublicURL returns the URL visitors use to load the object at path.
	PublicURL(path string) string
}
