package site

import (
	"context"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
)

// Hero is the landing banner
type Hero struct {
	SiteName    string
	ImageURL    string
	CopyrightBy string
}

// PricingGroup holds the plans of one category
type PricingGroup struct {
	Category string
	Plans    []*pricing.Plan
}

// Content is everything the public page renders. About and Contact are nil
// until an admin saves them.
type Content struct {
	Hero      Hero
	Offerings []*offerings.Offering
	Pricing   []PricingGroup
	Portfolio []*portfolio.Item
	About     *profile.About
	Contact   *profile.Contact
}

// ContentService gathers the public site content
type ContentService interface {
	Content(ctx context.Context) (*Content, error)
}
