package offerings

import (
	"context"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
)

// OfferingService defines the operations on the services section.
type OfferingService interface {
	// List returns all offerings ordered by display order.
	List(ctx context.Context) ([]*Offering, error)

	// GetByID retrieves an offering by ID.
	GetByID(ctx context.Context, offeringID string) (*Offering, error)

	// Create appends an offering; image is optional.
	Create(ctx context.Context, input OfferingInput, image *images.Upload) (*Offering, error)

	// Update replaces the text of an offering and, when image is set, its picture.
	Update(ctx context.Context, offeringID string, input OfferingInput, image *images.Upload) (*Offering, error)

	// DeleteByID removes an offering and its picture.
	DeleteByID(ctx context.Context, offeringID string) error
}

// OfferingRepository defines the interface for offering persistence
type OfferingRepository interface {
	Create(ctx context.Context, offering *Offering) error
	List(ctx context.Context) ([]*Offering, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, offeringID string) (*Offering, error)
	UpdateByID(ctx context.Context, offering *Offering) error
	DeleteByID(ctx context.Context, offeringID string) error
}
