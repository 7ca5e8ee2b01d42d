package portfolio

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// Item entity
type Item struct {
	ID              string    `validate:"required,uuid4"`
	ImageURL        string    `validate:"required,max=1024"`
	ImagePath       string    `validate:"omitempty,max=512"`
	AltText         string    `validate:"required,min=1,max=255"`
	DisplayOrder    int       `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Item struct
func (i *Item) Validate() error {
	if err := validators.Struct(i); err != nil {
		return fmt.Errorf("invalid portfolio item: %w", err)
	}
	return nil
}

// ItemPatch carries the editable fields of an item; nil fields are left unchanged
type ItemPatch struct {
	AltText      *string
	DisplayOrder *int
}

// Apply copies the set fields of p onto item
func (p ItemPatch) Apply(item *Item) {
	if p.AltText != nil {
		item.AltText = *p.AltText
	}
	if p.DisplayOrder != nil {
		item.DisplayOrder = *p.DisplayOrder
	}
}
