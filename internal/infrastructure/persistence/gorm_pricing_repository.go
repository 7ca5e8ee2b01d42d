package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPricingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPricingRepository creates a new GORM-based pricing.PlanRepository implementation
func NewGormPricingRepository(db *gorm.DB, logger logger.Logger) (pricing.PlanRepository, error) {
	return &gormPricingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPricingRepository) Create(ctx context.Context, plan *pricing.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PricingPlanModel{}
	model.FromDomain(plan)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Info("Created pricing plan", "id", plan.ID, "name", plan.Name, "category", plan.Category)
	return nil
}

func (r *gormPricingRepository) List(ctx context.Context, category string) ([]*pricing.Plan, error) {
	var modelList []*models.PricingPlanModel

	dbQuery := r.db.WithContext(ctx).Model(&models.PricingPlanModel{})
	if category != "" {
		dbQuery = dbQuery.Where("category = ?", category)
	}

	if err := dbQuery.
		Order("display_order asc").
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pricing plans: %w", err)
	}

	domainList := make([]*pricing.Plan, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPricingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PricingPlanModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pricing plans: %w", err)
	}
	return count, nil
}

func (r *gormPricingRepository) GetByID(ctx context.Context, planID string) (*pricing.Plan, error) {
	var model models.PricingPlanModel
	if err := r.db.WithContext(ctx).Where("id = ?", planID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("pricing plan", planID)
		}
		return nil, fmt.Errorf("failed to fetch pricing plan: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPricingRepository) UpdateByID(ctx context.Context, plan *pricing.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PricingPlanModel{}
	model.FromDomain(plan)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("pricing plan", plan.ID)
	}

	r.logger.Info("Updated pricing plan", "id", plan.ID)
	return nil
}

func (r *gormPricingRepository) DeleteByID(ctx context.Context, planID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", planID).Delete(&models.PricingPlanModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("pricing plan", planID)
	}

	r.logger.Info("Deleted pricing plan", "id", planID)
	return nil
}
