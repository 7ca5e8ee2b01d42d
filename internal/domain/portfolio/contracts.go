package portfolio

import (
	"context"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
)

// ItemService defines the portfolio operations of the public site and the admin panel.
type ItemService interface {
	// List returns all items ordered by display order.
	List(ctx context.Context) ([]*Item, error)

	// GetByID retrieves an item by ID.
	GetByID(ctx context.Context, itemID string) (*Item, error)

	// Upload stores the image and appends a new item at the end of the gallery.
	// An empty altText falls back to the uploaded file name.
	Upload(ctx context.Context, upload *images.Upload, altText string) (*Item, error)

	// Update changes the alt text or position of an item.
	Update(ctx context.Context, itemID string, patch ItemPatch) (*Item, error)

	// DeleteByID removes the stored image and then the item.
	DeleteByID(ctx context.Context, itemID string) error
}

// ItemRepository defines the interface for portfolio item persistence
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	List(ctx context.Context) ([]*Item, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, itemID string) (*Item, error)
	UpdateByID(ctx context.Context, item *Item) error
	DeleteByID(ctx context.Context, itemID string) error
}
