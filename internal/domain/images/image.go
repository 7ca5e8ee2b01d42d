package images

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/google/uuid"
)

// Folders grouping the objects of each site section
const (
	FolderPortfolio = "portfolio"
	FolderServices  = "services"
	FolderAbout     = "about"
)

// Upload is an image received from an admin form, not yet stored
type Upload struct {
	FileName    string    `validate:"required,max=255,imageext"`
	ContentType string    `validate:"required,startswith=image/"`
	Size        int64     `validate:"gt=0"`
	Body        io.Reader `validate:"required"`
}

// Validate for validating Upload struct
func (u *Upload) Validate() error {
	if err := validators.Struct(u); err != nil {
		return fmt.Errorf("invalid image upload: %w", err)
	}
	return nil
}

// Image is a stored object and the URL visitors load it from
type Image struct {
	Path        string
	URL         string
	ContentType string
	Size        int64
}

// ObjectPath builds "<folder>/<prefix->uuid.ext" for a new object. The
// extension comes from the uploaded file name, lower-cased.
func ObjectPath(folder, prefix, fileName string) string {
	name := uuid.NewString()
	if prefix != "" {
		name = prefix + "-" + name
	}
	if ext := strings.ToLower(path.Ext(fileName)); ext != "" {
		name += ext
	}
	return path.Join(folder, name)
}

// PathFromURL recovers an object path from a public URL by keeping its last
// two segments. Rows written before paths were stored only carry the URL.
func PathFromURL(publicURL string) string {
	trimmed := strings.TrimRight(publicURL, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 {
		return trimmed
	}
	return strings.Join(segments[len(segments)-2:], "/")
}
