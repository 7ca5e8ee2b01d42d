package pricing

import "context"

// PlanService defines the operations on pricing plans.
type PlanService interface {
	// List returns plans ordered by display order, restricted to category when it is not empty.
	List(ctx context.Context, category string) ([]*Plan, error)
	GetByID(ctx context.Context, planID string) (*Plan, error)
	Create(ctx context.Context, input PlanInput) (*Plan, error)
	// Update keeps the plan's display order unless input sets one.
	Update(ctx context.Context, planID string, input PlanInput) (*Plan, error)
	DeleteByID(ctx context.Context, planID string) error
}

// PlanRepository defines the interface for pricing plan persistence
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	List(ctx context.Context, category string) ([]*Plan, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, planID string) (*Plan, error)
	UpdateByID(ctx context.Context, plan *Plan) error
	DeleteByID(ctx context.Context, planID string) error
}
