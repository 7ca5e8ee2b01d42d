package commands

import (
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/app"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/connector"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the database schema
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	store.logger.Info("Database migrations completed successfully", "type", store.cfg.Database.Type)
	return nil
}

// SeedCmd fills an empty site with the default services, prices and contact block
func SeedCmd(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	seeder, err := newSeeder(cmd, store)
	if err != nil {
		return err
	}

	result, err := seeder.Seed(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d services, %d pricing plans, contact: %t\n", result.Offerings, result.Plans, result.Contact)
	return nil
}

func newSeeder(cmd *cobra.Command, store *storeSession) (*app.Seeder, error) {
	offeringRepo, err := persistence.NewGormOfferingRepository(store.db, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create offering repository: %w", err)
	}
	planRepo, err := persistence.NewGormPricingRepository(store.db, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing repository: %w", err)
	}
	contactRepo, err := persistence.NewGormContactRepository(store.db, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}

	// no images are seeded, but the offering service needs a connector
	imageConnector, err := connector.NewImageConnector(cmd.Context(), &store.cfg.Images, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create image connector: %w", err)
	}

	offeringService, err := app.NewOfferingService(offeringRepo, imageConnector, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create offering service: %w", err)
	}
	pricingService, err := app.NewPricingService(planRepo, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing service: %w", err)
	}
	contactService, err := app.NewContactService(contactRepo, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	return app.NewSeeder(offeringService, pricingService, contactService, store.logger)
}

// InitSiteCommands registers the migrate and seed commands
func InitSiteCommands(rootCmd *cobra.Command) error {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  MigrateCmd,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load the default services, pricing plans and contact block into an empty site",
		RunE:  SeedCmd,
	})

	return nil
}
