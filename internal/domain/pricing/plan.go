package pricing

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// Plan categories
const (
	CategoryWedding = "wedding"
	CategoryVideo   = "video"
)

// Categories lists plan categories in the order the site renders them
var Categories = []string{CategoryWedding, CategoryVideo}

// Plan entity
type Plan struct {
	ID           string   `validate:"required,uuid4"`
	Name         string   `validate:"required,min=1,max=255"`
	Description  string   `validate:"required,min=1,max=1000"`
	Price        string   `validate:"required,min=1,max=50"`
	PriceNote    *string  `validate:"omitempty,min=1,max=255"`
	Features     []string `validate:"required,min=1,dive,min=1,max=500"`
	Category     string   `validate:"required,oneof=wedding video"`
	Popular      bool
	Notes        *string `validate:"omitempty,min=1,max=2000"`
	DisplayOrder int     `validate:"gte=0"`
}

// Validate for validating Plan struct
func (p *Plan) Validate() error {
	if err := validators.Struct(p); err != nil {
		return fmt.Errorf("invalid pricing plan: %w", err)
	}
	return nil
}

// PlanInput is the admin form for a plan. Features may be given as a list or
// as newline separated text; the list wins when both are set.
type PlanInput struct {
	Name         string
	Description  string
	Price        string
	PriceNote    string
	Features     []string
	FeaturesText string
	Category     string
	Popular      bool
	Notes        string
	DisplayOrder *int
}

// Apply copies the normalized input onto plan
func (in PlanInput) Apply(plan *Plan) {
	plan.Name = strings.TrimSpace(in.Name)
	plan.Description = strings.TrimSpace(in.Description)
	plan.Price = strings.TrimSpace(in.Price)
	plan.PriceNote = optional(in.PriceNote)
	plan.Notes = optional(in.Notes)
	plan.Popular = in.Popular

	plan.Category = in.Category
	if plan.Category == "" {
		plan.Category = CategoryWedding
	}

	if len(in.Features) > 0 {
		plan.Features = cleanFeatures(in.Features)
	} else {
		plan.Features = ParseFeatures(in.FeaturesText)
	}

	if in.DisplayOrder != nil {
		plan.DisplayOrder = *in.DisplayOrder
	}
}

// ParseFeatures splits one-feature-per-line text, dropping blank lines.
func ParseFeatures(text string) []string {
	return cleanFeatures(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// FeaturesText is the inverse of ParseFeatures, used to prefill edit forms.
func (p *Plan) FeaturesText() string {
	return strings.Join(p.Features, "\n")
}

func cleanFeatures(lines []string) []string {
	features := make([]string, 0, len(lines))
	for _, line := range lines {
		if f := strings.TrimSpace(line); f != "" {
			features = append(features, f)
		}
	}
	return features
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
