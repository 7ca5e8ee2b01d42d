package inquiries

import "context"

// InquiryService handles contact form messages.
type InquiryService interface {
	// Submit validates and stores a visitor message.
	Submit(ctx context.Context, input InquiryInput) (*Inquiry, error)

	// List returns messages newest first.
	List(ctx context.Context) ([]*Inquiry, error)

	DeleteByID(ctx context.Context, inquiryID string) error
}

// InquiryRepository defines the interface for inquiry persistence
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	List(ctx context.Context) ([]*Inquiry, error)
	DeleteByID(ctx context.Context, inquiryID string) error
}
