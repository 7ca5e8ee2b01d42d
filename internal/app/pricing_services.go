package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/google/uuid"
)

type pricingService struct {
	repo   pricing.PlanRepository
	logger logger.Logger
}

// NewPricingService creates a new instance of pricing.PlanService
func NewPricingService(repo pricing.PlanRepository, logger logger.Logger) (pricing.PlanService, error) {
	return &pricingService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *pricingService) List(ctx context.Context, category string) ([]*pricing.Plan, error) {
	plans, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	return plans, nil
}

func (s *pricingService) GetByID(ctx context.Context, planID string) (*pricing.Plan, error) {
	return s.repo.GetByID(ctx, planID)
}

func (s *pricingService) Create(ctx context.Context, input pricing.PlanInput) (*pricing.Plan, error) {
	plan := &pricing.Plan{ID: uuid.NewString()}
	input.Apply(plan)

	if input.DisplayOrder == nil {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pricing plans: %w", err)
		}
		plan.DisplayOrder = int(count)
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *pricingService) Update(ctx context.Context, planID string, input pricing.PlanInput) (*pricing.Plan, error) {
	plan, err := s.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	input.Apply(plan)

	if err := s.repo.UpdateByID(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *pricingService) DeleteByID(ctx context.Context, planID string) error {
	return s.repo.DeleteByID(ctx, planID)
}
