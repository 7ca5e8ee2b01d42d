package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAboutRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAboutRepository creates a new GORM-based profile.AboutRepository implementation
func NewGormAboutRepository(db *gorm.DB, logger logger.Logger) (profile.AboutRepository, error) {
	return &gormAboutRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Get returns the first about row; the table is expected to hold at most one.
func (r *gormAboutRepository) Get(ctx context.Context) (*profile.About, error) {
	var model models.AboutModel
	if err := r.db.WithContext(ctx).Order("id").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("about section: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch about section: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAboutRepository) Create(ctx context.Context, about *profile.About) error {
	if err := about.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AboutModel{}
	model.FromDomain(about)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create about section: %w", err)
	}

	r.logger.Info("Created about section", "id", about.ID)
	return nil
}

func (r *gormAboutRepository) UpdateByID(ctx context.Context, about *profile.About) error {
	if err := about.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AboutModel{}
	model.FromDomain(about)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update about section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("about section", about.ID)
	}

	r.logger.Info("Updated about section", "id", about.ID)
	return nil
}

type gormContactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContactRepository creates a new GORM-based profile.ContactRepository implementation
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (profile.ContactRepository, error) {
	return &gormContactRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Get returns the first contact row; the table is expected to hold at most one.
func (r *gormContactRepository) Get(ctx context.Context) (*profile.Contact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).Order("id").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact information: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch contact information: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContactRepository) Create(ctx context.Context, contact *profile.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContactModel{}
	model.FromDomain(contact)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact information: %w", err)
	}

	r.logger.Info("Created contact information", "id", contact.ID)
	return nil
}

func (r *gormContactRepository) UpdateByID(ctx context.Context, contact *profile.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContactModel{}
	model.FromDomain(contact)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update contact information: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("contact information", contact.ID)
	}

	r.logger.Info("Updated contact information", "id", contact.ID)
	return nil
}
