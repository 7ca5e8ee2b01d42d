package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPortfolioRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPortfolioRepository creates a new GORM-based portfolio.ItemRepository implementation
func NewGormPortfolioRepository(db *gorm.DB, logger logger.Logger) (portfolio.ItemRepository, error) {
	return &gormPortfolioRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPortfolioRepository) Create(ctx context.Context, item *portfolio.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PortfolioItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}

	r.logger.Info("Created portfolio item", "id", item.ID, "display_order", item.DisplayOrder)
	return nil
}

func (r *gormPortfolioRepository) List(ctx context.Context) ([]*portfolio.Item, error) {
	var modelList []*models.PortfolioItemModel
	if err := r.db.WithContext(ctx).
		Order("display_order asc").
		Order("date_time_created asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch portfolio items: %w", err)
	}

	domainList := make([]*portfolio.Item, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPortfolioRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PortfolioItemModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count portfolio items: %w", err)
	}
	return count, nil
}

func (r *gormPortfolioRepository) GetByID(ctx context.Context, itemID string) (*portfolio.Item, error) {
	var model models.PortfolioItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("portfolio item", itemID)
		}
		return nil, fmt.Errorf("failed to fetch portfolio item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPortfolioRepository) UpdateByID(ctx context.Context, item *portfolio.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PortfolioItemModel{}
	model.FromDomain(item)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update portfolio item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("portfolio item", item.ID)
	}

	r.logger.Info("Updated portfolio item", "id", item.ID)
	return nil
}

func (r *gormPortfolioRepository) DeleteByID(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.PortfolioItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("portfolio item", itemID)
	}

	r.logger.Info("Deleted portfolio item", "id", itemID)
	return nil
}
