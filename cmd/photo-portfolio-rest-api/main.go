// cmd/photo-portfolio-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/photo-portfolio/internal/api/rest/v1"
	"github.com/MGTheTrain/photo-portfolio/internal/app"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/i18n"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/connector"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/security"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"
	"github.com/MGTheTrain/photo-portfolio/internal/web"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services v1.Services
	web      *web.Handler
}

// appRepositories groups the gorm repositories built on one connection
type appRepositories struct {
	portfolio portfolio.ItemRepository
	offerings offerings.OfferingRepository
	pricing   pricing.PlanRepository
	about     profile.AboutRepository
	contact   profile.ContactRepository
	inquiries inquiries.InquiryRepository
	users     users.UserRepository
	revoked   users.RevokedTokenRepository
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database migrations completed successfully", "type", cfg.Database.Type)

	repos, err := initializeRepositories(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	imageConnector, err := connector.NewImageConnector(context.Background(), &cfg.Images, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create image connector: %w", err)
	}
	log.Info("Image connector initialized", "provider", cfg.Images.Provider)

	services, err := initializeApplicationServices(cfg, repos, imageConnector, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	catalog, err := i18n.NewCatalog(cfg.Site.DefaultLanguage)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	webHandler, err := web.NewHandler(services.Content, services.Inquiries, catalog, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: *services,
		web:      webHandler,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.services, cfg.Images.UploadLimit())

	// local images are served by this process, blob storage serves its own
	mediaDir := ""
	if cfg.Images.Provider == config.LocalImageProvider {
		mediaDir = cfg.Images.LocalDir
	}
	if err := deps.web.Register(r, cfg.Images.PublicBaseURL, mediaDir); err != nil {
		return fmt.Errorf("failed to register web pages: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// browsers refuse credentialed responses for a wildcard origin
func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// initializeRepositories sets up one gorm repository per table
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	var (
		repos appRepositories
		err   error
	)

	if repos.portfolio, err = persistence.NewGormPortfolioRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create portfolio repository: %w", err)
	}
	if repos.offerings, err = persistence.NewGormOfferingRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create offering repository: %w", err)
	}
	if repos.pricing, err = persistence.NewGormPricingRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create pricing repository: %w", err)
	}
	if repos.about, err = persistence.NewGormAboutRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create about repository: %w", err)
	}
	if repos.contact, err = persistence.NewGormContactRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	if repos.inquiries, err = persistence.NewGormInquiryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create inquiry repository: %w", err)
	}
	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.revoked, err = persistence.NewGormRevokedTokenRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create revoked token repository: %w", err)
	}

	return &repos, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *appRepositories,
	imageConnector images.ImageConnector,
	log logger.Logger,
) (*v1.Services, error) {
	portfolioService, err := app.NewPortfolioService(repos.portfolio, imageConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio service: %w", err)
	}

	offeringService, err := app.NewOfferingService(repos.offerings, imageConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create offering service: %w", err)
	}

	pricingService, err := app.NewPricingService(repos.pricing, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing service: %w", err)
	}

	aboutService, err := app.NewAboutService(repos.about, imageConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create about service: %w", err)
	}

	contactService, err := app.NewContactService(repos.contact, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	inquiryService, err := app.NewInquiryService(repos.inquiries, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry service: %w", err)
	}

	tokens, err := security.NewJWTTokenManager(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	authService, err := app.NewAuthService(repos.users, repos.revoked, tokens, security.NewBcryptPasswordHasher(0), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	contentService, err := app.NewContentService(
		cfg.Site,
		offeringService, pricingService, portfolioService,
		aboutService, contactService, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Auth:      authService,
		Content:   contentService,
		Portfolio: portfolioService,
		Offerings: offeringService,
		Pricing:   pricingService,
		About:     aboutService,
		Contact:   contactService,
		Inquiries: inquiryService,
	}, nil
}
