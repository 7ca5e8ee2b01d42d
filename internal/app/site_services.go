package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type contentService struct {
	settings  config.SiteSettings
	offerings offerings.OfferingService
	pricing   pricing.PlanService
	portfolio portfolio.ItemService
	about     profile.AboutService
	contact   profile.ContactService
	logger    logger.Logger
}

// NewContentService creates a new instance of site.ContentService
func NewContentService(
	settings config.SiteSettings,
	offeringService offerings.OfferingService,
	pricingService pricing.PlanService,
	portfolioService portfolio.ItemService,
	aboutService profile.AboutService,
	contactService profile.ContactService,
	logger logger.Logger,
) (site.ContentService, error) {
	return &contentService{
		settings:  settings,
		offerings: offeringService,
		pricing:   pricingService,
		portfolio: portfolioService,
		about:     aboutService,
		contact:   contactService,
		logger:    logger,
	}, nil
}

func (s *contentService) Content(ctx context.Context) (*site.Content, error) {
	content := &site.Content{
		Hero: site.Hero{
			SiteName:    s.settings.Name,
			ImageURL:    s.settings.HeroImageURL,
			CopyrightBy: s.settings.CopyrightHolder,
		},
	}

	var plans []*pricing.Plan

	// sections are independent reads
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		content.Offerings, err = s.offerings.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		plans, err = s.pricing.List(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		content.Portfolio, err = s.portfolio.List(gctx)
		return err
	})
	g.Go(func() error {
		about, err := s.about.Get(gctx)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to load about section: %w", err)
		}
		content.About = about
		return nil
	})
	g.Go(func() error {
		contact, err := s.contact.Get(gctx)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to load contact information: %w", err)
		}
		content.Contact = contact
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	content.Pricing = groupPlans(plans)

	return content, nil
}

// groupPlans splits plans by category in pricing.Categories order, keeping
// their display order and skipping empty categories
func groupPlans(plans []*pricing.Plan) []site.PricingGroup {
	byCategory := make(map[string][]*pricing.Plan, len(pricing.Categories))
	for _, p := range plans {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	groups := make([]site.PricingGroup, 0, len(pricing.Categories))
	for _, c := range pricing.Categories {
		if len(byCategory[c]) == 0 {
			continue
		}
		groups = append(groups, site.PricingGroup{Category: c, Plans: byCategory[c]})
	}
	return groups
}
