package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/google/uuid"
)

type inquiryService struct {
	repo   inquiries.InquiryRepository
	logger logger.Logger
}

// NewInquiryService creates a new instance of inquiries.InquiryService
func NewInquiryService(repo inquiries.InquiryRepository, logger logger.Logger) (inquiries.InquiryService, error) {
	return &inquiryService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *inquiryService) Submit(ctx context.Context, input inquiries.InquiryInput) (*inquiries.Inquiry, error) {
	inquiry := &inquiries.Inquiry{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
	}
	input.Apply(inquiry)

	if err := inquiry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context) ([]*inquiries.Inquiry, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return list, nil
}

func (s *inquiryService) DeleteByID(ctx context.Context, inquiryID string) error {
	return s.repo.DeleteByID(ctx, inquiryID)
}
