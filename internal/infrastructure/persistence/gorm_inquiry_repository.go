package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormInquiryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormInquiryRepository creates a new GORM-based inquiries.InquiryRepository implementation
func NewGormInquiryRepository(db *gorm.DB, logger logger.Logger) (inquiries.InquiryRepository, error) {
	return &gormInquiryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormInquiryRepository) Create(ctx context.Context, inquiry *inquiries.Inquiry) error {
	if err := inquiry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InquiryModel{}
	model.FromDomain(inquiry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	r.logger.Info("Stored inquiry", "id", inquiry.ID)
	return nil
}

func (r *gormInquiryRepository) List(ctx context.Context) ([]*inquiries.Inquiry, error) {
	var modelList []*models.InquiryModel
	if err := r.db.WithContext(ctx).Order("date_time_created desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch inquiries: %w", err)
	}

	domainList := make([]*inquiries.Inquiry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormInquiryRepository) DeleteByID(ctx context.Context, inquiryID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", inquiryID).Delete(&models.InquiryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete inquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundError("inquiry", inquiryID)
	}

	r.logger.Info("Deleted inquiry", "id", inquiryID)
	return nil
}
