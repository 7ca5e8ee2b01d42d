package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/google/uuid"
)

type portfolioService struct {
	repo      portfolio.ItemRepository
	connector images.ImageConnector
	logger    logger.Logger
}

// NewPortfolioService creates a new instance of portfolio.ItemService
func NewPortfolioService(repo portfolio.ItemRepository, connector images.ImageConnector, logger logger.Logger) (portfolio.ItemService, error) {
	return &portfolioService{
		repo:      repo,
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *portfolioService) List(ctx context.Context) ([]*portfolio.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

func (s *portfolioService) GetByID(ctx context.Context, itemID string) (*portfolio.Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *portfolioService) Upload(ctx context.Context, upload *images.Upload, altText string) (*portfolio.Item, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count portfolio items: %w", err)
	}

	img, err := s.connector.Upload(ctx, images.FolderPortfolio, "", upload)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	if altText == "" {
		altText = upload.FileName
	}

	item := &portfolio.Item{
		ID:              uuid.NewString(),
		ImageURL:        img.URL,
		ImagePath:       img.Path,
		AltText:         altText,
		DisplayOrder:    int(count),
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		discardImage(ctx, s.connector, s.logger, img.Path)
		return nil, fmt.Errorf("failed to save portfolio item: %w", err)
	}

	return item, nil
}

func (s *portfolioService) Update(ctx context.Context, itemID string, patch portfolio.ItemPatch) (*portfolio.Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)

	if err := s.repo.UpdateByID(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteByID removes the image first; a failed image delete does not keep the row
func (s *portfolioService) DeleteByID(ctx context.Context, itemID string) error {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	discardImage(ctx, s.connector, s.logger, storedPath(item.ImagePath, item.ImageURL))

	return s.repo.DeleteByID(ctx, itemID)
}
