package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOfferingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOfferingRepository creates a new GORM-based offerings.OfferingRepository implementation
func NewGormOfferingRepository(db *gorm.DB, logger logger.Logger) (offerings.OfferingRepository, error) {
	return &gormOfferingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOfferingRepository) Create(ctx context.Context, offering *offerings.Offering) error {
	if err := offering.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OfferingModel{}
	model.FromDomain(offering)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	r.logger.Info("Created service", "id", offering.ID, "title", offering.Title)
	return nil
}

func (r *gormOfferingRepository) List(ctx context.Context) ([]*offerings.Offering, error) {
	var modelList []*models.OfferingModel
	if err := r.db.WithContext(ctx).
		Order("display_order asc").
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	domainList := make([]*offerings.Offering, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormOfferingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OfferingModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

func (r *gormOfferingRepository) GetByID(ctx context.Context, offeringID string) (*offerings.Offering, error) {
	var model models.OfferingModel
	if err := r.db.WithContext(ctx).Where("id = ?", offeringID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("service", offeringID)
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOfferingRepository) UpdateByID(ctx context.Context, offering *offerings.Offering) error {
	if err := offering.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OfferingModel{}
	model.FromDomain(offering)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("service", offering.ID)
	}

	r.logger.Info("Updated service", "id", offering.ID)
	return nil
}

func (r *gormOfferingRepository) DeleteByID(ctx context.Context, offeringID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", offeringID).Delete(&models.OfferingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("service", offeringID)
	}

	r.logger.Info("Deleted service", "id", offeringID)
	return nil
}
