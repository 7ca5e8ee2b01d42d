package offerings

import (
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// Offering entity
type Offering struct {
	ID           string `validate:"required,uuid4"`
	Title        string `validate:"required,min=1,max=255"`
	Description  string `validate:"required,min=1,max=2000"`
	ImageURL     string `validate:"omitempty,max=1024"`
	ImagePath    string `validate:"omitempty,max=512"`
	DisplayOrder int    `validate:"gte=0"`
}

// Validate for validating Offering struct
func (o *Offering) Validate() error {
	if err := validators.Struct(o); err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}
	return nil
}

// OfferingInput is the admin form for creating or editing an offering
type OfferingInput struct {
	Title        string
	Description  string
	DisplayOrder *int
}
