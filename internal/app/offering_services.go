package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/google/uuid"
)

type offeringService struct {
	repo      offerings.OfferingRepository
	connector images.ImageConnector
	logger    logger.Logger
}

// NewOfferingService creates a new instance of offerings.OfferingService
func NewOfferingService(repo offerings.OfferingRepository, connector images.ImageConnector, logger logger.Logger) (offerings.OfferingService, error) {
	return &offeringService{
		repo:      repo,
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *offeringService) List(ctx context.Context) ([]*offerings.Offering, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return list, nil
}

func (s *offeringService) GetByID(ctx context.Context, offeringID string) (*offerings.Offering, error) {
	return s.repo.GetByID(ctx, offeringID)
}

func (s *offeringService) Create(ctx context.Context, input offerings.OfferingInput, image *images.Upload) (*offerings.Offering, error) {
	offering := &offerings.Offering{ID: uuid.NewString()}
	applyOfferingInput(offering, input)

	if input.DisplayOrder == nil {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count services: %w", err)
		}
		offering.DisplayOrder = int(count)
	}

	if err := offering.Validate(); err != nil {
		return nil, err
	}

	uploaded, err := s.attachImage(ctx, offering, image)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, offering); err != nil {
		discardImage(ctx, s.connector, s.logger, uploaded)
		return nil, fmt.Errorf("failed to save service: %w", err)
	}
	return offering, nil
}

func (s *offeringService) Update(ctx context.Context, offeringID string, input offerings.OfferingInput, image *images.Upload) (*offerings.Offering, error) {
	offering, err := s.repo.GetByID(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	previous := storedPath(offering.ImagePath, offering.ImageURL)
	applyOfferingInput(offering, input)

	if err := offering.Validate(); err != nil {
		return nil, err
	}

	uploaded, err := s.attachImage(ctx, offering, image)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateByID(ctx, offering); err != nil {
		discardImage(ctx, s.connector, s.logger, uploaded)
		return nil, err
	}

	if uploaded != "" {
		discardImage(ctx, s.connector, s.logger, previous)
	}
	return offering, nil
}

func (s *offeringService) DeleteByID(ctx context.Context, offeringID string) error {
	offering, err := s.repo.GetByID(ctx, offeringID)
	if err != nil {
		return err
	}

	discardImage(ctx, s.connector, s.logger, storedPath(offering.ImagePath, offering.ImageURL))

	return s.repo.DeleteByID(ctx, offeringID)
}

// attachImage uploads image, if any, and points offering at it. It returns
// the new object path or "".
func (s *offeringService) attachImage(ctx context.Context, offering *offerings.Offering, image *images.Upload) (string, error) {
	if image == nil {
		return "", nil
	}

	img, err := s.connector.Upload(ctx, images.FolderServices, "", image)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	offering.ImageURL = img.URL
	offering.ImagePath = img.Path
	return img.Path, nil
}

func applyOfferingInput(offering *offerings.Offering, input offerings.OfferingInput) {
	offering.Title = strings.TrimSpace(input.Title)
	offering.Description = strings.TrimSpace(input.Description)
	if input.DisplayOrder != nil {
		offering.DisplayOrder = *input.DisplayOrder
	}
}
