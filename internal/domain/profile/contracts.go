package profile

import (
	"context"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
)

// AboutService reads and saves the about section.
type AboutService interface {
	// Get returns the about section or an error wrapping domain.ErrNotFound.
	Get(ctx context.Context) (*About, error)

	// Save creates the section on first use and updates it afterwards. Both
	// images are required on creation; later a nil upload keeps the current image.
	Save(ctx context.Context, input AboutInput, portrait, working *images.Upload) (*About, error)
}

// ContactService reads and saves the contact block.
type ContactService interface {
	// Get returns the contact block or an error wrapping domain.ErrNotFound.
	Get(ctx context.Context) (*Contact, error)
	Save(ctx context.Context, input ContactInput) (*Contact, error)
}

// AboutRepository persists the about row
type AboutRepository interface {
	Get(ctx context.Context) (*About, error)
	Create(ctx context.Context, about *About) error
	UpdateByID(ctx context.Context, about *About) error
}

// ContactRepository persists the contact row
type ContactRepository interface {
	Get(ctx context.Context) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	UpdateByID(ctx context.Context, contact *Contact) error
}
