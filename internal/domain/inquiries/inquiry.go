package inquiries

import (
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// Inquiry entity
type Inquiry struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	Email           string    `validate:"required,email,max=255"`
	Message         string    `validate:"required,min=1,max=5000"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Inquiry struct
func (i *Inquiry) Validate() error {
	if err := validators.Struct(i); err != nil {
		return fmt.Errorf("invalid inquiry: %w", err)
	}
	return nil
}

// InquiryInput is the public contact form
type InquiryInput struct {
	Name    string
	Email   string
	Message string
}

// Apply copies the trimmed form onto inquiry
func (in InquiryInput) Apply(inquiry *Inquiry) {
	inquiry.Name = strings.TrimSpace(in.Name)
	inquiry.Email = strings.TrimSpace(in.Email)
	inquiry.Message = strings.TrimSpace(in.Message)
}
