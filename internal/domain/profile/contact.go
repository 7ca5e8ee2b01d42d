package profile

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// Contact entity
type Contact struct {
	ID       string `validate:"required,uuid4"`
	Email    string `validate:"required,email,max=255"`
	Phone    string `validate:"required,min=1,max=50"`
	Location string `validate:"required,min=1,max=255"`
}

// Validate for validating Contact struct
func (c *Contact) Validate() error {
	if err := validators.Struct(c); err != nil {
		return fmt.Errorf("invalid contact information: %w", err)
	}
	return nil
}

// ContactInput is the admin form for the contact block
type ContactInput struct {
	Email    string
	Phone    string
	Location string
}

// Apply copies the trimmed input onto contact
func (in ContactInput) Apply(contact *Contact) {
	contact.Email = strings.TrimSpace(in.Email)
	contact.Phone = strings.TrimSpace(in.Phone)
	contact.Location = strings.TrimSpace(in.Location)
}
