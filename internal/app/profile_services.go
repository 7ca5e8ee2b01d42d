package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/google/uuid"
)

type aboutService struct {
	repo      profile.AboutRepository
	connector images.ImageConnector
	logger    logger.Logger
}

// NewAboutService creates a new instance of profile.AboutService
func NewAboutService(repo profile.AboutRepository, connector images.ImageConnector, logger logger.Logger) (profile.AboutService, error) {
	return &aboutService{
		repo:      repo,
		connector: connector,
		logger:    logger,
	}, nil
}

func (s *aboutService) Get(ctx context.Context) (*profile.About, error) {
	return s.repo.Get(ctx)
}

func (s *aboutService) Save(ctx context.Context, input profile.AboutInput, portrait, working *images.Upload) (*profile.About, error) {
	about, err := s.repo.Get(ctx)
	isNew := errors.Is(err, domain.ErrNotFound)
	if err != nil && !isNew {
		return nil, err
	}

	if isNew {
		if portrait == nil || working == nil {
			return nil, fmt.Errorf("both images are required for the first save: %w", validators.ErrInvalid)
		}
		about = &profile.About{ID: uuid.NewString()}
	}

	input.Apply(about)
	previousPortrait := storedPath(about.PortraitImagePath, about.PortraitImageURL)
	previousWorking := storedPath(about.WorkingImagePath, about.WorkingImageURL)

	var uploaded []string
	rollback := func() {
		for _, p := range uploaded {
			discardImage(ctx, s.connector, s.logger, p)
		}
	}

	if portrait != nil {
		img, err := s.connector.Upload(ctx, images.FolderAbout, "portrait", portrait)
		if err != nil {
			return nil, fmt.Errorf("failed to upload portrait image: %w", err)
		}
		uploaded = append(uploaded, img.Path)
		about.PortraitImageURL, about.PortraitImagePath = img.URL, img.Path
	}

	if working != nil {
		img, err := s.connector.Upload(ctx, images.FolderAbout, "working", working)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("failed to upload working image: %w", err)
		}
		uploaded = append(uploaded, img.Path)
		about.WorkingImageURL, about.WorkingImagePath = img.URL, img.Path
	}

	if isNew {
		err = s.repo.Create(ctx, about)
	} else {
		err = s.repo.UpdateByID(ctx, about)
	}
	if err != nil {
		rollback()
		return nil, fmt.Errorf("failed to save about section: %w", err)
	}

	if !isNew {
		if portrait != nil {
			discardImage(ctx, s.connector, s.logger, previousPortrait)
		}
		if working != nil {
			discardImage(ctx, s.connector, s.logger, previousWorking)
		}
	}
	return about, nil
}

type contactService struct {
	repo   profile.ContactRepository
	logger logger.Logger
}

// NewContactService creates a new instance of profile.ContactService
func NewContactService(repo profile.ContactRepository, logger logger.Logger) (profile.ContactService, error) {
	return &contactService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *contactService) Get(ctx context.Context) (*profile.Contact, error) {
	return s.repo.Get(ctx)
}

func (s *contactService) Save(ctx context.Context, input profile.ContactInput) (*profile.Contact, error) {
	contact, err := s.repo.Get(ctx)
	isNew := errors.Is(err, domain.ErrNotFound)
	if err != nil && !isNew {
		return nil, err
	}
	if isNew {
		contact = &profile.Contact{ID: uuid.NewString()}
	}

	input.Apply(contact)

	if isNew {
		err = s.repo.Create(ctx, contact)
	} else {
		err = s.repo.UpdateByID(ctx, contact)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save contact information: %w", err)
	}
	return contact, nil
}
