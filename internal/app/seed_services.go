package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
)

// SeedResult counts the records written by Seed
type SeedResult struct {
	Offerings int
	Plans     int
	Contact   bool
}

// Seeder fills an empty site with the default catalogue
type Seeder struct {
	offeringService offerings.OfferingService
	pricingService  pricing.PlanService
	contactService  profile.ContactService
	logger          logger.Logger
}

// NewSeeder creates a Seeder
func NewSeeder(offeringService offerings.OfferingService, pricingService pricing.PlanService, contactService profile.ContactService, logger logger.Logger) (*Seeder, error) {
	return &Seeder{
		offeringService: offeringService,
		pricingService:  pricingService,
		contactService:  contactService,
		logger:          logger,
	}, nil
}

// Seed writes the default services, pricing plans and contact block. A section
// that already holds data is left untouched so seeding can be repeated.
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	existing, err := s.offeringService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		for _, input := range DefaultOfferings() {
			if _, err := s.offeringService.Create(ctx, input, nil); err != nil {
				return result, fmt.Errorf("failed to seed service %q: %w", input.Title, err)
			}
			result.Offerings++
		}
	} else {
		s.logger.Info("Services already present, skipping", "count", len(existing))
	}

	plans, err := s.pricingService.List(ctx, "")
	if err != nil {
		return result, err
	}
	if len(plans) == 0 {
		for _, input := range DefaultPlans() {
			if _, err := s.pricingService.Create(ctx, input); err != nil {
				return result, fmt.Errorf("failed to seed pricing plan %q: %w", input.Name, err)
			}
			result.Plans++
		}
	} else {
		s.logger.Info("Pricing plans already present, skipping", "count", len(plans))
	}

	_, err = s.contactService.Get(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if _, err := s.contactService.Save(ctx, DefaultContact()); err != nil {
			return result, fmt.Errorf("failed to seed contact information: %w", err)
		}
		result.Contact = true
	case err != nil:
		return result, err
	}

	s.logger.Info("Seeding finished", "services", result.Offerings, "plans", result.Plans, "contact", result.Contact)
	return result, nil
}

// DefaultOfferings is the services section shipped with a new site
func DefaultOfferings() []offerings.OfferingInput {
	return []offerings.OfferingInput{
		{
			Title:       "Mariages",
			Description: "Une photographie de mariage romantique et intemporelle qui capture chaque instant précieux de votre journée.",
		},
	}
}

// DefaultPlans is the wedding and video price list shipped with a new site
func DefaultPlans() []pricing.PlanInput {
	return []pricing.PlanInput{
		{
			Name:        "After Day",
			Price:       "300€",
			PriceNote:   "200€ avec un autre forfait",
			Description: "Parfait pour une séance intimiste",
			Category:    pricing.CategoryWedding,
			Features: []string{
				"Séance photo extérieure d'environ 1H30",
				"Minimum de 60 photos couleurs et noir et blanc",
				"Photos travaillées en haute qualité",
				"Remise sur clé USB dans un packaging prévu à cet effet",
				"Idéal en complément de votre reportage mariage",
			},
		},
		{
			Name:        "La Nina",
			Price:       "600€",
			Description: "Les plus beaux instants condensés",
			Category:    pricing.CategoryWedding,
			Features: []string{
				"Photographies de la cérémonie laïque ou religieuse",
				"3h de présence au vin d'honneur",
				"Minimum de 200 photos couleurs et noir et blanc",
				"Retranscription de l'ambiance et des détails",
				"Portraits de vos invités pris sur le vif",
				"Photos des mariés et de groupes",
				"Remise sur clé USB en haute qualité",
			},
		},
		{
			Name:        "La Myna",
			Price:       "800€",
			Description: "Les grands moments de votre mariage",
			Category:    pricing.CategoryWedding,
			Popular:     true,
			Features: []string{
				"Du bouquet jusqu'à la fin du vin d'honneur (18h)",
				"Minimum de 350 photos couleurs et noir et blanc",
				"Photos des mariés et de groupes",
				"Retranscription de l'ambiance et des détails",
				"Portraits de vos invités pris sur le vif",
				"Remise sur clé USB en haute qualité",
			},
		},
		{
			Name:        "La Ultima",
			Price:       "900€",
			PriceNote:   "à partir de",
			Description: "Formule complète - Tous vos souvenirs",
			Category:    pricing.CategoryWedding,
			Features: []string{
				"Des préparatifs de la mariée jusqu'à la soirée",
				"Minimum de 400 photos couleurs et noir et blanc",
				"900€ jusqu'à l'ouverture de bal (20h)",
				"1100€ jusqu'au repas (22h)",
				"1300€ jusqu'au dessert en soirée",
				"Photos des mariés et de groupes",
				"Retranscription complète de votre journée",
				"Remise sur clé USB en haute qualité",
				"Supplément 60€ par demi-heure (après 3h30)",
				"Frais kilométrique: 0,60€/km après 20 km",
			},
		},
		{
			Name:        "VIDEO FILM",
			Price:       "850€",
			Description: "Vidéo longue de votre mariage",
			Category:    pricing.CategoryVideo,
			Features: []string{
				"Vidéo entre 30 et 80 minutes",
				"Des préparatifs jusqu'à la pièce montée",
				"Vidéo stabilisée Haute définition",
				"Montage studio professionnel (3 jours)",
				"Cérémonie filmée intégralement",
			},
		},
		{
			Name:        "VIDEO CLIP Teaser",
			Price:       "500€",
			Description: "Teaser vidéo de votre mariage",
			Category:    pricing.CategoryVideo,
			Features: []string{
				"Vidéo entre 5 et 10 minutes",
				"Des préparatifs jusqu'à la pièce montée",
				"Vidéo stabilisée Haute définition",
				"Montage studio professionnel (1 jour)",
				"Cérémonie filmée intégralement",
			},
		},
		{
			Name:        "Mommy Love",
			Price:       "300€",
			Description: "Séance intimiste avec la future maman",
			Category:    pricing.CategoryVideo,
			Features: []string{
				"Séance photo extérieure d'environ 2h",
				"Minimum de 60 photos couleurs et noir et blanc",
				"Photos travaillées en haute qualité",
				"Remise sur clé USB dans un packaging prévu à cet effet",
			},
		},
	}
}

// DefaultContact is a placeholder contact block to be replaced from the admin panel
func DefaultContact() profile.ContactInput {
	return profile.ContactInput{
		Email:    "contact@photography.com",
		Phone:    "+1 (555) 123-4567",
		Location: "New York, NY",
	}
}
